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

func setupEmployeeServiceTest(t *testing.T) (*EmployeeService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewEmployeeService(repository.NewEmployeeRepository(db)), db
}

func TestEmployeeService_Create(t *testing.T) {
	svc, _ := setupEmployeeServiceTest(t)

	emp, err := svc.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NotZero(t, emp.ID)
	require.Equal(t, models.RoleEmployee, emp.Role)
	require.NotEqual(t, "secret123", emp.PasswordHash)
	require.NoError(t, credentials.VerifyPassword("secret123", emp.PasswordHash))
	require.WithinDuration(t, time.Now(), emp.LastPasswordChange, 5*time.Second)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	svc, db := setupEmployeeServiceTest(t)

	_, err := svc.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Create(CreateEmployeeInput{
		Name:     "Impostor",
		Email:    "alice@example.com",
		Password: "other-secret",
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEmployeeService_Update_PasswordMovesExpiryClock(t *testing.T) {
	svc, db := setupEmployeeServiceTest(t)

	emp, err := svc.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	oldHash := emp.PasswordHash

	past := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.Employee{}).Where("id = ?", emp.ID).
		Update("last_password_change", past).Error)

	password := "new-secret"
	updated, err := svc.Update(emp.ID, UpdateEmployeeInput{Password: &password})
	require.NoError(t, err)

	require.NotEqual(t, oldHash, updated.PasswordHash)
	require.NoError(t, credentials.VerifyPassword("new-secret", updated.PasswordHash))
	require.WithinDuration(t, time.Now(), updated.LastPasswordChange, 5*time.Second)
}

func TestEmployeeService_Update_OtherFieldsLeaveExpiryClock(t *testing.T) {
	svc, db := setupEmployeeServiceTest(t)

	emp, err := svc.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	past := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.Employee{}).Where("id = ?", emp.ID).
		Update("last_password_change", past).Error)

	name := "Alice Smith"
	position := "Engineer"
	updated, err := svc.Update(emp.ID, UpdateEmployeeInput{Name: &name, Position: &position})
	require.NoError(t, err)

	require.Equal(t, "Alice Smith", updated.Name)
	require.NotNil(t, updated.Position)
	require.Equal(t, "Engineer", *updated.Position)
	require.WithinDuration(t, past, updated.LastPasswordChange, 5*time.Second)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc, _ := setupEmployeeServiceTest(t)

	name := "Nobody"
	_, err := svc.Update(42, UpdateEmployeeInput{Name: &name})
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeService_Delete_DetachesTasks(t *testing.T) {
	svc, db := setupEmployeeServiceTest(t)

	emp, err := svc.Create(CreateEmployeeInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	taskSvc := NewTaskService(repository.NewTaskRepository(db))
	task, err := taskSvc.Create(CreateTaskInput{Title: "Report", EmployeeID: &emp.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(emp.ID))

	_, err = svc.Get(emp.ID)
	require.ErrorIs(t, err, ErrEmployeeNotFound)

	// the task survives with its owner reference nulled
	survivor, err := taskSvc.Get(task.ID)
	require.NoError(t, err)
	require.Nil(t, survivor.EmployeeID)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	svc, _ := setupEmployeeServiceTest(t)

	require.ErrorIs(t, svc.Delete(42), ErrEmployeeNotFound)
}
