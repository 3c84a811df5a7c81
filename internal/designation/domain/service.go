package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

type Designation struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	Title      string       `gorm:"not null;uniqueIndex:idx_designation_title_vendor" json:"title"`
	VendorName string       `gorm:"column:vendor_name;not null;uniqueIndex:idx_designation_title_vendor" json:"vendor_name"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Designation) TableName() string {
	return "designations"
}

type CreateDesignationRequest struct {
	Title      string `json:"title"`
	VendorName string `json:"vendor_name"`
}

type ListDesignationRequest struct {
	PageToken  string
	PageSize   int
	VendorName string
}

type ListDesignationResponse struct {
	pagination.PageInfo
	Designations []Designation `json:"designations"`
}

type Service interface {
	Create(ctx context.Context, req CreateDesignationRequest) (Designation, error)
	List(ctx context.Context, req ListDesignationRequest) (ListDesignationResponse, error)
}

var (
	ErrInvalidTitle  = errors.New("invalid_designation_title")
	ErrInvalidVendor = errors.New("invalid_designation_vendor")
	ErrDuplicate     = errors.New("designation_exists")
	ErrNotFound      = errors.New("designation_not_found")
)
