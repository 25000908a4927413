package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"employee-management-api/internal/credentials"
	"employee-management-api/internal/dto"
	apierrors "employee-management-api/internal/errors"
	"employee-management-api/internal/models"
	"employee-management-api/internal/services"
)

// EmployeeHandler coordinates employee CRUD HTTP handlers.
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// ListEmployees returns all employees.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	emps, err := h.employeeService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeOutList(emps))
}

// GetEmployee returns a single employee by ID.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	emp, err := h.employeeService.Get(id)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeOut(*emp))
}

// UpdateEmployee applies a partial update to an employee.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateEmployeeRequest struct {
		Name     *string `json:"name"`
		Email    *string `json:"email" binding:"omitempty,email"`
		Position *string `json:"position"`
		Password *string `json:"password"`
		Role     *string `json:"role" binding:"omitempty,oneof=admin employee"`
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	input := services.UpdateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Password: req.Password,
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		input.Role = &role
	}

	emp, err := h.employeeService.Update(id, input)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeOut(*emp))
}

// DeleteEmployee removes an employee. Its tasks are kept with a nulled
// employee_id.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Employee deleted",
	})
}

func respondEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, "Employee not found")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.EmailTaken(c)
	case errors.Is(err, services.ErrNameEmpty):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, credentials.ErrCredentialFault):
		apierrors.InternalError(c, "Failed to hash password")
	default:
		apierrors.InternalError(c, "")
	}
}

// parseIDParam parses the :id path parameter, responding 400 on garbage.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
