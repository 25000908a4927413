package repository

import (
	"employee-management-api/internal/models"
)

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates a new employee
	Create(emp *models.Employee) error

	// FindByID finds an employee by ID
	FindByID(id uint64) (*models.Employee, error)

	// FindByEmail finds an employee by email
	FindByEmail(email string) (*models.Employee, error)

	// List retrieves all employees
	List() ([]models.Employee, error)

	// Update updates an employee
	Update(emp *models.Employee) error

	// Delete deletes an employee, detaching any tasks that reference it
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves all tasks
	List() ([]models.Task, error)

	// ListByEmployee retrieves tasks assigned to the given employee
	ListByEmployee(employeeID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task
	Delete(id uint64) error
}
