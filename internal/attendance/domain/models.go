package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// MonthlyAttendance is one reconciled attendance row per employee and
// calendar month. Resubmitting a period replaces the previous row.
type MonthlyAttendance struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	EmpID         string       `gorm:"column:emp_id;not null;uniqueIndex:idx_attendance_emp_period" json:"emp_id"`
	ApproverEmpID string       `gorm:"column:approver_emp_id" json:"approver_emp_id,omitempty"`
	Year          int          `gorm:"not null;uniqueIndex:idx_attendance_emp_period" json:"year"`
	Month         int          `gorm:"not null;uniqueIndex:idx_attendance_emp_period" json:"month"`
	WorkingDays   int          `gorm:"column:working_days;not null" json:"working_days"`
	LeavesTaken   int          `gorm:"column:leaves_taken;not null" json:"leaves_taken"`
	LossOfPay     int          `gorm:"column:loss_of_pay;not null" json:"loss_of_pay"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (MonthlyAttendance) TableName() string {
	return "monthly_attendance"
}
