package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/internal/designation/domain"
	"github.com/fieldhr/rollcall/pkg/db"
	"github.com/fieldhr/rollcall/pkg/db/option"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"github.com/fieldhr/rollcall/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Logger *zap.Logger
	Node   *snowflake.Node
	Store  repository.Repository[domain.Designation]
}

type service struct {
	log   *zap.Logger
	node  *snowflake.Node
	store repository.Repository[domain.Designation]
}

func New(p Params) domain.Service {
	return &service{
		log:   p.Logger.Named("designation.service"),
		node:  p.Node,
		store: p.Store,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateDesignationRequest) (domain.Designation, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Designation{}, domain.ErrInvalidTitle
	}
	vendorName := strings.TrimSpace(req.VendorName)
	if vendorName == "" {
		return domain.Designation{}, domain.ErrInvalidVendor
	}

	designation := domain.Designation{
		ID:         s.node.Generate(),
		Title:      title,
		VendorName: vendorName,
	}

	if err := s.store.Create(ctx, &designation); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Designation{}, domain.ErrDuplicate
		}
		s.log.Error("failed to create designation", zap.Error(err))
		return domain.Designation{}, err
	}

	return designation, nil
}

func (s *service) List(ctx context.Context, req domain.ListDesignationRequest) (domain.ListDesignationResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	filter := domain.Designation{VendorName: req.VendorName}
	designations, err := s.store.Find(ctx, &filter,
		option.WithOrder("id DESC"),
		option.ApplyPagination(page),
	)
	if err != nil {
		s.log.Error("failed to list designations", zap.Error(err))
		return domain.ListDesignationResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(designations, page.PageSize, func(d *domain.Designation) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: d.ID.String()})
		return token
	})
	if len(designations) > page.PageSize {
		designations = designations[:page.PageSize]
	}

	resp := domain.ListDesignationResponse{PageInfo: *pageInfo}
	resp.Designations = make([]domain.Designation, 0, len(designations))
	for _, d := range designations {
		resp.Designations = append(resp.Designations, *d)
	}
	return resp, nil
}
