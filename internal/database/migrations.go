package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"employee-management-api/internal/models"
)

// SchemaMigration records which migration steps have been applied.
type SchemaMigration struct {
	ID        string `gorm:"primarykey"`
	AppliedAt time.Time
}

type migration struct {
	id  string
	run func(tx *gorm.DB) error
}

// Ordered, append-only. Never edit an applied step, add a new one.
var migrations = []migration{
	{
		id: "0001_create_employees_and_tasks",
		run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.Employee{}, &models.Task{})
		},
	},
}

// Migrate applies any migration steps not yet recorded in schema_migrations.
// Each step runs in its own transaction together with its bookkeeping row, so
// a failed step leaves the schema version consistent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("id = ?", m.id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.id, err)
		}
		if count > 0 {
			continue
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{ID: m.id, AppliedAt: time.Now()}).Error
		}); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.id, err)
		}

		log.Printf("applied migration %s", m.id)
	}

	return nil
}
