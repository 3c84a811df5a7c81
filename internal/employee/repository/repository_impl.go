package repository

import (
	"context"
	"time"

	"github.com/fieldhr/rollcall/internal/employee/domain"
	"github.com/fieldhr/rollcall/pkg/db/option"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, employee *domain.Employee) error {
	return db.WithContext(ctx).Create(employee).Error
}

func (r *repository) FindByEmpID(ctx context.Context, db *gorm.DB, empID string) (*domain.Employee, error) {
	var employee domain.Employee
	if err := db.WithContext(ctx).Where("emp_id = ?", empID).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *repository) FindByEmpIDs(ctx context.Context, db *gorm.DB, empIDs []string) ([]*domain.Employee, error) {
	if len(empIDs) == 0 {
		return nil, nil
	}

	var employees []*domain.Employee
	if err := db.WithContext(ctx).Where("emp_id IN ?", empIDs).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, filter domain.ListEmployeeFilter, page pagination.Pagination) ([]*domain.Employee, error) {
	query := db.WithContext(ctx).Model(&domain.Employee{})
	if filter.VendorName != "" {
		query = query.Where("vendor_name = ?", filter.VendorName)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.ApproverEmpID != "" {
		query = query.Where("approver_emp_id = ?", filter.ApproverEmpID)
	}
	if filter.Resigned != nil {
		query = query.Where("resigned = ?", *filter.Resigned)
	}

	query = option.WithOrder("id DESC").Apply(query)
	query = option.ApplyPagination(page).Apply(query)

	var employees []*domain.Employee
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *repository) MarkResigned(ctx context.Context, db *gorm.DB, empID string, date time.Time) error {
	return db.WithContext(ctx).Model(&domain.Employee{}).
		Where("emp_id = ?", empID).
		Updates(map[string]any{
			"resigned":         true,
			"resignation_date": date,
		}).Error
}
