package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"employee-management-api/internal/dto"
	apierrors "employee-management-api/internal/errors"
	"employee-management-api/internal/services"
)

// TaskHandler coordinates task CRUD HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new task. The employee_id is stored without an
// existence check; referential integrity only kicks in on employee deletes.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string  `json:"title" binding:"required"`
		Description *string `json:"description"`
		Completed   bool    `json:"completed"`
		EmployeeID  *uint64 `json:"employee_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskOut(*task))
}

// ListTasks returns all tasks.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskOutList(tasks))
}

// GetTask returns a single task by ID.
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskOut(*task))
}

// ListMyTasks returns tasks filtered by the employee_id query parameter.
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Query("employee_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee_id")
		return
	}

	tasks, err := h.taskService.ListByEmployee(employeeID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskOutList(tasks))
}

// UpdateTask applies a partial update to a task. The raw JSON map is
// inspected so that an explicit null can be told apart from an absent field
// on the nullable columns.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var input services.UpdateTaskInput

	if v, present := rawReq["title"]; present {
		title, ok := v.(string)
		if !ok {
			apierrors.BadRequest(c, "title must be a string")
			return
		}
		input.Title = &title
	}
	if v, present := rawReq["description"]; present {
		if v == nil {
			input.ClearDescription = true
		} else if desc, ok := v.(string); ok {
			input.Description = &desc
		} else {
			apierrors.BadRequest(c, "description must be a string or null")
			return
		}
	}
	if v, present := rawReq["completed"]; present {
		completed, ok := v.(bool)
		if !ok {
			apierrors.BadRequest(c, "completed must be a boolean")
			return
		}
		input.Completed = &completed
	}
	if v, present := rawReq["employee_id"]; present {
		if v == nil {
			input.ClearEmployee = true
		} else if f, ok := v.(float64); ok && f >= 0 {
			employeeID := uint64(f)
			input.EmployeeID = &employeeID
		} else {
			apierrors.BadRequest(c, "employee_id must be a non-negative integer or null")
			return
		}
	}

	task, err := h.taskService.Update(id, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskOut(*task))
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted",
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
