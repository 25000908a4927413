package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Employee struct {
	ID                 uint64    `gorm:"primarykey" json:"id"`
	Name               string    `gorm:"type:varchar(150);not null" json:"name"`
	Email              string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Position           *string   `gorm:"type:varchar(150)" json:"position"`
	PasswordHash       string    `gorm:"type:varchar(255);not null" json:"-"`
	Role               Role      `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	LastPasswordChange time.Time `gorm:"not null" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL" json:"tasks,omitempty"`
}
