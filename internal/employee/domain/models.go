package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Employee struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	EmpID           string       `gorm:"column:emp_id;not null;uniqueIndex" json:"emp_id"`
	Name            string       `gorm:"not null" json:"name"`
	Gender          string       `json:"gender,omitempty"`
	State           string       `json:"state,omitempty"`
	Location        string       `json:"location,omitempty"`
	VendorName      string       `gorm:"column:vendor_name" json:"vendor_name,omitempty"`
	ApproverEmpID   string       `gorm:"column:approver_emp_id" json:"approver_emp_id,omitempty"`
	BillingRuleID   string       `gorm:"column:billing_rule_id" json:"billing_rule_id,omitempty"`
	DesignationID   snowflake.ID `gorm:"column:designation_id" json:"designation_id,omitempty"`
	DOB             *time.Time   `gorm:"column:dob;type:date" json:"dob,omitempty"`
	DOJ             time.Time    `gorm:"column:doj;type:date;not null" json:"doj"`
	ResignationDate *time.Time   `gorm:"column:resignation_date;type:date" json:"resignation_date,omitempty"`
	Resigned        bool         `gorm:"not null;default:false" json:"resigned"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// BillingProfile is the slice of an employee record the attendance
// reconciler needs: tenure bounds plus the billing cycle anchor day.
type BillingProfile struct {
	EmpID           string
	DOJ             time.Time
	ResignationDate *time.Time
	Resigned        bool
	BillingStartDay int
}
