package domain

import (
	"context"
	"errors"

	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListApproverFilter struct {
	EmpID string
	Email string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, approver *Approver) error
	FindByEmpID(ctx context.Context, db *gorm.DB, empID string) (*Approver, error)
	List(ctx context.Context, db *gorm.DB, filter ListApproverFilter, page pagination.Pagination) ([]*Approver, error)
}

type CreateApproverRequest struct {
	EmpID        string `json:"emp_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ManagerEmpID string `json:"manager_emp_id"`
	ManagerName  string `json:"manager_name"`
	ManagerEmail string `json:"manager_email"`
}

type ListApproverRequest struct {
	PageToken string
	PageSize  int
	EmpID     string
	Email     string
}

type ListApproverResponse struct {
	pagination.PageInfo
	Approvers []Approver `json:"approvers"`
}

type Service interface {
	Create(ctx context.Context, req CreateApproverRequest) (Approver, error)
	List(ctx context.Context, req ListApproverRequest) (ListApproverResponse, error)
	GetByEmpID(ctx context.Context, empID string) (Approver, error)
}

var (
	ErrInvalidEmpID    = errors.New("invalid_approver_emp_id")
	ErrInvalidName     = errors.New("invalid_approver_name")
	ErrInvalidEmail    = errors.New("invalid_approver_email")
	ErrInvalidPassword = errors.New("invalid_approver_password")
	ErrDuplicate       = errors.New("approver_exists")
	ErrNotFound        = errors.New("approver_not_found")
)
