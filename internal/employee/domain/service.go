package domain

import (
	"context"
	"errors"
	"time"

	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListEmployeeFilter struct {
	VendorName    string
	Location      string
	ApproverEmpID string
	Resigned      *bool
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, employee *Employee) error
	FindByEmpID(ctx context.Context, db *gorm.DB, empID string) (*Employee, error)
	FindByEmpIDs(ctx context.Context, db *gorm.DB, empIDs []string) ([]*Employee, error)
	List(ctx context.Context, db *gorm.DB, filter ListEmployeeFilter, page pagination.Pagination) ([]*Employee, error)
	MarkResigned(ctx context.Context, db *gorm.DB, empID string, date time.Time) error
}

type CreateEmployeeRequest struct {
	EmpID         string `json:"emp_id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	State         string `json:"state"`
	Location      string `json:"location"`
	VendorName    string `json:"vendor_name"`
	ApproverEmpID string `json:"approver_emp_id"`
	BillingRuleID string `json:"billing_rule_id"`
	DesignationID string `json:"designation_id"`
	DOB           string `json:"dob"`
	DOJ           string `json:"doj"`
}

type ListEmployeeRequest struct {
	PageToken     string
	PageSize      int
	VendorName    string
	Location      string
	ApproverEmpID string
	Resigned      *bool
}

type ListEmployeeResponse struct {
	pagination.PageInfo
	Employees []Employee `json:"employees"`
}

type ResignEmployeeRequest struct {
	EmpID           string `json:"-"`
	ResignationDate string `json:"resignation_date"`
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	List(ctx context.Context, req ListEmployeeRequest) (ListEmployeeResponse, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)
	Resign(ctx context.Context, req ResignEmployeeRequest) (Employee, error)
	DirectoryByEmpIDs(ctx context.Context, empIDs []string) (map[string]BillingProfile, error)
}

var (
	ErrInvalidEmpID          = errors.New("invalid_employee_emp_id")
	ErrInvalidName           = errors.New("invalid_employee_name")
	ErrInvalidDate           = errors.New("invalid_employee_date")
	ErrInvalidBillingRule    = errors.New("invalid_employee_billing_rule")
	ErrInvalidDesignation    = errors.New("invalid_employee_designation")
	ErrDuplicate             = errors.New("employee_exists")
	ErrNotFound              = errors.New("employee_not_found")
	ErrResignationBeforeJoin = errors.New("resignation_before_joining")
)
