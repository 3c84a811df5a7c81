package domain

import (
	"context"
	"errors"

	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

type CreateVendorRequest struct {
	Name string `json:"vendor_name"`
}

type GetVendorRequest struct {
	ID string `json:"id"`
}

type ListVendorRequest struct {
	PageToken string
	PageSize  int
	Name      string
}

type ListVendorResponse struct {
	pagination.PageInfo
	Vendors []Vendor `json:"vendors"`
}

type Service interface {
	Create(ctx context.Context, req CreateVendorRequest) (Vendor, error)
	List(ctx context.Context, req ListVendorRequest) (ListVendorResponse, error)
	GetByID(ctx context.Context, req GetVendorRequest) (Vendor, error)
}

var (
	ErrInvalidName   = errors.New("invalid_vendor_name")
	ErrInvalidID     = errors.New("invalid_vendor_id")
	ErrDuplicateName = errors.New("vendor_exists")
	ErrNotFound      = errors.New("vendor_not_found")
)
