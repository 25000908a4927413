package dto

import (
	"employee-management-api/internal/models"
)

// TaskOut represents a task in API responses
type TaskOut struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	EmployeeID  *uint64 `json:"employee_id"`
}

// ToTaskOut converts a Task model to TaskOut
func ToTaskOut(task models.Task) TaskOut {
	return TaskOut{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		EmployeeID:  task.EmployeeID,
	}
}

// ToTaskOutList converts a slice of Task models to TaskOut
func ToTaskOutList(tasks []models.Task) []TaskOut {
	out := make([]TaskOut, len(tasks))
	for i, task := range tasks {
		out[i] = ToTaskOut(task)
	}
	return out
}
