package repository

import (
	"context"

	"github.com/fieldhr/rollcall/internal/approver/domain"
	"github.com/fieldhr/rollcall/pkg/db/option"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, approver *domain.Approver) error {
	return db.WithContext(ctx).Create(approver).Error
}

func (r *repository) FindByEmpID(ctx context.Context, db *gorm.DB, empID string) (*domain.Approver, error) {
	var approver domain.Approver
	if err := db.WithContext(ctx).Where("emp_id = ?", empID).First(&approver).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &approver, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, filter domain.ListApproverFilter, page pagination.Pagination) ([]*domain.Approver, error) {
	query := db.WithContext(ctx).Model(&domain.Approver{})
	if filter.EmpID != "" {
		query = query.Where("emp_id = ?", filter.EmpID)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	query = option.WithOrder("id DESC").Apply(query)
	query = option.ApplyPagination(page).Apply(query)

	var approvers []*domain.Approver
	if err := query.Find(&approvers).Error; err != nil {
		return nil, err
	}
	return approvers, nil
}
