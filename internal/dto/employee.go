package dto

import (
	"employee-management-api/internal/models"
)

// EmployeeOut represents an employee in API responses. The password hash is
// never part of any output shape.
type EmployeeOut struct {
	ID       uint64      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Position *string     `json:"position"`
	Role     models.Role `json:"role"`
}

// LoginOut represents a successful login in API responses
type LoginOut struct {
	Message    string      `json:"message"`
	EmployeeID uint64      `json:"employee_id"`
	Role       models.Role `json:"role"`
	Name       string      `json:"name"`
}

// ToEmployeeOut converts an Employee model to EmployeeOut
func ToEmployeeOut(emp models.Employee) EmployeeOut {
	return EmployeeOut{
		ID:       emp.ID,
		Name:     emp.Name,
		Email:    emp.Email,
		Position: emp.Position,
		Role:     emp.Role,
	}
}

// ToEmployeeOutList converts a slice of Employee models to EmployeeOut
func ToEmployeeOutList(emps []models.Employee) []EmployeeOut {
	out := make([]EmployeeOut, len(emps))
	for i, emp := range emps {
		out[i] = ToEmployeeOut(emp)
	}
	return out
}
