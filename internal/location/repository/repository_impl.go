package repository

import (
	"context"

	"github.com/fieldhr/rollcall/internal/location/domain"
	"github.com/fieldhr/rollcall/pkg/db/option"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, location *domain.Location) error {
	return db.WithContext(ctx).Create(location).Error
}

func (r *repository) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Location, error) {
	var location domain.Location
	if err := db.WithContext(ctx).Where("name = ?", name).First(&location).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *repository) List(ctx context.Context, db *gorm.DB, filter domain.ListLocationFilter, page pagination.Pagination) ([]*domain.Location, error) {
	query := db.WithContext(ctx).Model(&domain.Location{})
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}

	query = option.WithOrder("id DESC").Apply(query)
	query = option.ApplyPagination(page).Apply(query)

	var locations []*domain.Location
	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
