package repository

import (
	"context"
	"strings"

	"github.com/fieldhr/rollcall/internal/attendance/domain"
	"github.com/fieldhr/rollcall/pkg/db/option"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) DeleteByPeriod(ctx context.Context, db *gorm.DB, empID string, year, month int) error {
	return db.WithContext(ctx).
		Where("emp_id = ? AND year = ? AND month = ?", empID, year, month).
		Delete(&domain.MonthlyAttendance{}).Error
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, record *domain.MonthlyAttendance) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repository) List(ctx context.Context, db *gorm.DB, filter domain.ReportFilter, page pagination.Pagination) ([]*domain.MonthlyAttendance, error) {
	query := db.WithContext(ctx).Model(&domain.MonthlyAttendance{})

	if filter.VendorName != "" || filter.Designation != "" || filter.Resigned != nil {
		query = query.Select("monthly_attendance.*").
			Joins("JOIN employees ON employees.emp_id = monthly_attendance.emp_id")
	}
	if filter.Designation != "" {
		query = query.
			Joins("JOIN designations ON designations.id = employees.designation_id").
			Where("LOWER(designations.title) LIKE ?", "%"+strings.ToLower(filter.Designation)+"%")
	}
	if filter.VendorName != "" {
		query = query.Where("employees.vendor_name = ?", filter.VendorName)
	}
	if filter.Resigned != nil {
		query = query.Where("employees.resigned = ?", *filter.Resigned)
	}

	if filter.Year != 0 {
		query = query.Where("monthly_attendance.year = ?", filter.Year)
	}
	if filter.Month != 0 {
		query = query.Where("monthly_attendance.month = ?", filter.Month)
	}
	if filter.EmpID != "" {
		query = query.Where("monthly_attendance.emp_id = ?", filter.EmpID)
	}
	if filter.ApproverEmpID != "" {
		query = query.Where("monthly_attendance.approver_emp_id = ?", filter.ApproverEmpID)
	}

	query = option.WithOrder("monthly_attendance.id DESC").Apply(query)
	query = option.ApplyPaginationKeyed(page, "monthly_attendance.id").Apply(query)

	var records []*domain.MonthlyAttendance
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
