package repository

import (
	"employee-management-api/internal/models"
	"gorm.io/gorm"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create creates a new employee
func (r *GormEmployeeRepository) Create(emp *models.Employee) error {
	return r.db.Create(emp).Error
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(id uint64) (*models.Employee, error) {
	var emp models.Employee
	if err := r.db.First(&emp, id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// FindByEmail finds an employee by email
func (r *GormEmployeeRepository) FindByEmail(email string) (*models.Employee, error) {
	var emp models.Employee
	if err := r.db.Where("email = ?", email).First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// List retrieves all employees
func (r *GormEmployeeRepository) List() ([]models.Employee, error) {
	var emps []models.Employee
	if err := r.db.Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

// Update updates an employee
func (r *GormEmployeeRepository) Update(emp *models.Employee) error {
	return r.db.Save(emp).Error
}

// Delete deletes an employee and detaches its tasks in a transaction.
// Tasks outlive the employee: their employee_id is nulled, never cascaded.
func (r *GormEmployeeRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("employee_id = ?", id).
			Update("employee_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Employee{}, id).Error
	})
}
