package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"employee-management-api/internal/credentials"
	"employee-management-api/internal/models"
	"employee-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken       = errors.New("email already exists")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameEmpty        = errors.New("name cannot be empty")
)

// EmployeeService handles employee business logic
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// CreateEmployeeInput represents the required information to register an employee.
type CreateEmployeeInput struct {
	Name     string
	Email    string
	Position *string
	Password string
	Role     models.Role
}

// UpdateEmployeeInput represents a partial employee update. Only non-nil
// fields are applied.
type UpdateEmployeeInput struct {
	Name     *string
	Email    *string
	Position *string
	Password *string
	Role     *models.Role
}

// Create registers a new employee. The password is stored hashed and the
// expiry clock starts at creation time.
func (s *EmployeeService) Create(input CreateEmployeeInput) (*models.Employee, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameEmpty
	}

	if _, err := s.employeeRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := credentials.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleEmployee
	}

	emp := &models.Employee{
		Name:               name,
		Email:              input.Email,
		Position:           input.Position,
		PasswordHash:       hash,
		Role:               role,
		LastPasswordChange: time.Now(),
	}

	if err := s.employeeRepo.Create(emp); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// List returns all employees.
func (s *EmployeeService) List() ([]models.Employee, error) {
	emps, err := s.employeeRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return emps, nil
}

// Get retrieves an employee by ID.
func (s *EmployeeService) Get(id uint64) (*models.Employee, error) {
	emp, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return emp, nil
}

// Update applies a partial update. A new password is re-hashed and moves
// LastPasswordChange to now; any other field leaves the expiry clock alone.
func (s *EmployeeService) Update(id uint64, input UpdateEmployeeInput) (*models.Employee, error) {
	emp, err := s.employeeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	if input.Email != nil && *input.Email != emp.Email {
		if _, err := s.employeeRepo.FindByEmail(*input.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		emp.Email = *input.Email
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameEmpty
		}
		emp.Name = name
	}
	if input.Position != nil {
		emp.Position = input.Position
	}
	if input.Role != nil {
		emp.Role = *input.Role
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := credentials.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		emp.PasswordHash = hash
		emp.LastPasswordChange = time.Now()
	}

	if err := s.employeeRepo.Update(emp); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// Delete removes an employee. Owned tasks are detached, not deleted.
func (s *EmployeeService) Delete(id uint64) error {
	if _, err := s.employeeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to find employee: %w", err)
	}

	if err := s.employeeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
