package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Approver struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	EmpID        string       `gorm:"column:emp_id;not null;uniqueIndex" json:"emp_id"`
	Name         string       `gorm:"not null" json:"name"`
	Email        string       `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	ManagerEmpID string       `gorm:"column:manager_emp_id" json:"manager_emp_id,omitempty"`
	ManagerName  string       `gorm:"column:manager_name" json:"manager_name,omitempty"`
	ManagerEmail string       `gorm:"column:manager_email" json:"manager_email,omitempty"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Approver) TableName() string {
	return "approvers"
}
