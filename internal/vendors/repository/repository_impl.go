package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/internal/vendors/domain"
	"github.com/fieldhr/rollcall/pkg/db/option"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, vendor *domain.Vendor) error {
	return db.WithContext(ctx).Create(vendor).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := db.WithContext(ctx).Where("id = ?", id).First(&vendor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *repository) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := db.WithContext(ctx).Where("vendor_name = ?", name).First(&vendor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, filter domain.ListVendorFilter, page pagination.Pagination) ([]*domain.Vendor, error) {
	query := db.WithContext(ctx).Model(&domain.Vendor{})
	if filter.Name != "" {
		query = query.Where("vendor_name = ?", filter.Name)
	}

	query = option.WithOrder("id DESC").Apply(query)
	query = option.ApplyPagination(page).Apply(query)

	var vendors []*domain.Vendor
	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
