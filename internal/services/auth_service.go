package services

import (
	"errors"
	"fmt"

	"employee-management-api/internal/credentials"
	"employee-management-api/internal/models"
	"employee-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordExpired    = errors.New("password expired")
)

// AuthService handles login.
type AuthService struct {
	employeeRepo repository.EmployeeRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(employeeRepo repository.EmployeeRepository) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is what a successful login returns. No session or token is
// issued; subsequent requests identify themselves on their own.
type LoginResult struct {
	EmployeeID uint64
	Role       models.Role
	Name       string
}

// Login verifies credentials and the password-expiry policy. An unknown email
// and a wrong password are distinct branches internally but both surface as
// ErrInvalidCredentials.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	emp, err := s.employeeRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	if err := credentials.VerifyPassword(input.Password, emp.PasswordHash); err != nil {
		if errors.Is(err, credentials.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		// malformed stored hash, an internal fault rather than a bad login
		return nil, err
	}

	if credentials.PasswordExpired(emp.LastPasswordChange) {
		return nil, ErrPasswordExpired
	}

	return &LoginResult{
		EmployeeID: emp.ID,
		Role:       emp.Role,
		Name:       emp.Name,
	}, nil
}
