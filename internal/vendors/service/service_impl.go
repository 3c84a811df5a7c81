package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/internal/vendors/domain"
	"github.com/fieldhr/rollcall/pkg/db"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Logger     *zap.Logger
	DB         *gorm.DB
	Node       *snowflake.Node
	Repository domain.Repository
}

type service struct {
	log  *zap.Logger
	db   *gorm.DB
	node *snowflake.Node
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &service{
		log:  p.Logger.Named("vendor.service"),
		db:   p.DB,
		node: p.Node,
		repo: p.Repository,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateVendorRequest) (domain.Vendor, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Vendor{}, domain.ErrInvalidName
	}

	vendor := domain.Vendor{
		ID:   s.node.Generate(),
		Name: name,
	}

	if err := s.repo.Insert(ctx, s.db, &vendor); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Vendor{}, domain.ErrDuplicateName
		}
		s.log.Error("failed to create vendor", zap.Error(err))
		return domain.Vendor{}, err
	}

	return vendor, nil
}

func (s *service) List(ctx context.Context, req domain.ListVendorRequest) (domain.ListVendorResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	vendors, err := s.repo.List(ctx, s.db, domain.ListVendorFilter{Name: req.Name}, page)
	if err != nil {
		s.log.Error("failed to list vendors", zap.Error(err))
		return domain.ListVendorResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(vendors, page.PageSize, func(v *domain.Vendor) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: v.ID.String()})
		return token
	})
	if len(vendors) > page.PageSize {
		vendors = vendors[:page.PageSize]
	}

	resp := domain.ListVendorResponse{PageInfo: *pageInfo}
	resp.Vendors = make([]domain.Vendor, 0, len(vendors))
	for _, v := range vendors {
		resp.Vendors = append(resp.Vendors, *v)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, req domain.GetVendorRequest) (domain.Vendor, error) {
	id, err := snowflake.ParseString(req.ID)
	if err != nil {
		return domain.Vendor{}, domain.ErrInvalidID
	}

	vendor, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		s.log.Error("failed to get vendor", zap.Error(err))
		return domain.Vendor{}, err
	}
	if vendor == nil {
		return domain.Vendor{}, domain.ErrNotFound
	}
	return *vendor, nil
}
