package domain

import (
	"context"
	"errors"

	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListLocationFilter struct {
	Name  string
	State string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, location *Location) error
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Location, error)
	List(ctx context.Context, db *gorm.DB, filter ListLocationFilter, page pagination.Pagination) ([]*Location, error)
}

type CreateLocationRequest struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

type ListLocationRequest struct {
	PageToken string
	PageSize  int
	Name      string
	State     string
}

type ListLocationResponse struct {
	pagination.PageInfo
	Locations []Location `json:"locations"`
}

type Service interface {
	Create(ctx context.Context, req CreateLocationRequest) (Location, error)
	List(ctx context.Context, req ListLocationRequest) (ListLocationResponse, error)
}

var (
	ErrInvalidName   = errors.New("invalid_location_name")
	ErrInvalidState  = errors.New("invalid_location_state")
	ErrDuplicateName = errors.New("location_exists")
	ErrNotFound      = errors.New("location_not_found")
)
