package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/internal/location/domain"
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
		log:  p.Logger.Named("location.service"),
		db:   p.DB,
		node: p.Node,
		repo: p.Repository,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateLocationRequest) (domain.Location, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Location{}, domain.ErrInvalidName
	}

	state := strings.TrimSpace(req.State)
	if state == "" {
		return domain.Location{}, domain.ErrInvalidState
	}

	location := domain.Location{
		ID:    s.node.Generate(),
		Name:  name,
		State: state,
	}

	if err := s.repo.Insert(ctx, s.db, &location); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Location{}, domain.ErrDuplicateName
		}
		s.log.Error("failed to create location", zap.Error(err))
		return domain.Location{}, err
	}

	return location, nil
}

func (s *service) List(ctx context.Context, req domain.ListLocationRequest) (domain.ListLocationResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	locations, err := s.repo.List(ctx, s.db, domain.ListLocationFilter{Name: req.Name, State: req.State}, page)
	if err != nil {
		s.log.Error("failed to list locations", zap.Error(err))
		return domain.ListLocationResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(locations, page.PageSize, func(l *domain.Location) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: l.ID.String()})
		return token
	})
	if len(locations) > page.PageSize {
		locations = locations[:page.PageSize]
	}

	resp := domain.ListLocationResponse{PageInfo: *pageInfo}
	resp.Locations = make([]domain.Location, 0, len(locations))
	for _, l := range locations {
		resp.Locations = append(resp.Locations, *l)
	}
	return resp, nil
}
