package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListVendorFilter struct {
	Name string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, vendor *Vendor) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Vendor, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Vendor, error)
	List(ctx context.Context, db *gorm.DB, filter ListVendorFilter, page pagination.Pagination) ([]*Vendor, error)
}
