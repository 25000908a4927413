package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"employee-management-api/internal/credentials"
	"employee-management-api/internal/database"
	"employee-management-api/internal/models"
	"employee-management-api/internal/repository"
)

type authServiceTestEnv struct {
	db          *gorm.DB
	authService *AuthService
	empService  *EmployeeService
}

func setupAuthServiceTest(t *testing.T) authServiceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	empRepo := repository.NewEmployeeRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authServiceTestEnv{
		db:          db,
		authService: NewAuthService(empRepo),
		empService:  NewEmployeeService(empRepo),
	}
}

func TestAuthService_Login(t *testing.T) {
	env := setupAuthServiceTest(t)

	emp, err := env.empService.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := env.authService.Login(LoginInput{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, emp.ID, result.EmployeeID)
	require.Equal(t, models.RoleEmployee, result.Role)
	require.Equal(t, "Alice", result.Name)
}

func TestAuthService_Login_WrongPasswordAndUnknownEmail(t *testing.T) {
	env := setupAuthServiceTest(t)

	_, err := env.empService.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// both branches collapse to the same external error kind
	_, err = env.authService.Login(LoginInput{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.authService.Login(LoginInput{Email: "never-registered@x.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_ExpiredPassword(t *testing.T) {
	env := setupAuthServiceTest(t)

	emp, err := env.empService.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	stale := time.Now().Add(-61 * 24 * time.Hour)
	require.NoError(t, env.db.Model(&models.Employee{}).Where("id = ?", emp.ID).
		Update("last_password_change", stale).Error)

	_, err = env.authService.Login(LoginInput{Email: "a@x.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrPasswordExpired)

	// resetting the password clears the expiry
	password := "fresh-secret"
	_, err = env.empService.Update(emp.ID, UpdateEmployeeInput{Password: &password})
	require.NoError(t, err)

	_, err = env.authService.Login(LoginInput{Email: "a@x.com", Password: "fresh-secret"})
	require.NoError(t, err)
}

func TestAuthService_Login_MalformedHashIsNotAMismatch(t *testing.T) {
	env := setupAuthServiceTest(t)

	emp, err := env.empService.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&models.Employee{}).Where("id = ?", emp.ID).
		Update("password_hash", "corrupted").Error)

	_, err = env.authService.Login(LoginInput{Email: "a@x.com", Password: "secret123"})
	require.ErrorIs(t, err, credentials.ErrCredentialFault)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}
