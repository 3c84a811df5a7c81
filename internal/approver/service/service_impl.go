package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/internal/approver/domain"
	"github.com/fieldhr/rollcall/internal/auth/password"
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
		log:  p.Logger.Named("approver.service"),
		db:   p.DB,
		node: p.Node,
		repo: p.Repository,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateApproverRequest) (domain.Approver, error) {
	empID := strings.TrimSpace(req.EmpID)
	if empID == "" {
		return domain.Approver{}, domain.ErrInvalidEmpID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Approver{}, domain.ErrInvalidName
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Approver{}, domain.ErrInvalidEmail
	}
	if req.Password == "" {
		return domain.Approver{}, domain.ErrInvalidPassword
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		s.log.Error("failed to hash approver password", zap.Error(err))
		return domain.Approver{}, err
	}

	approver := domain.Approver{
		ID:           s.node.Generate(),
		EmpID:        empID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		ManagerEmpID: strings.TrimSpace(req.ManagerEmpID),
		ManagerName:  strings.TrimSpace(req.ManagerName),
		ManagerEmail: strings.TrimSpace(req.ManagerEmail),
	}

	if err := s.repo.Insert(ctx, s.db, &approver); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Approver{}, domain.ErrDuplicate
		}
		s.log.Error("failed to create approver", zap.Error(err))
		return domain.Approver{}, err
	}

	return approver, nil
}

func (s *service) List(ctx context.Context, req domain.ListApproverRequest) (domain.ListApproverResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	approvers, err := s.repo.List(ctx, s.db, domain.ListApproverFilter{EmpID: req.EmpID, Email: req.Email}, page)
	if err != nil {
		s.log.Error("failed to list approvers", zap.Error(err))
		return domain.ListApproverResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(approvers, page.PageSize, func(a *domain.Approver) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: a.ID.String()})
		return token
	})
	if len(approvers) > page.PageSize {
		approvers = approvers[:page.PageSize]
	}

	resp := domain.ListApproverResponse{PageInfo: *pageInfo}
	resp.Approvers = make([]domain.Approver, 0, len(approvers))
	for _, a := range approvers {
		resp.Approvers = append(resp.Approvers, *a)
	}
	return resp, nil
}

func (s *service) GetByEmpID(ctx context.Context, empID string) (domain.Approver, error) {
	approver, err := s.repo.FindByEmpID(ctx, s.db, empID)
	if err != nil {
		s.log.Error("failed to get approver", zap.Error(err))
		return domain.Approver{}, err
	}
	if approver == nil {
		return domain.Approver{}, domain.ErrNotFound
	}
	return *approver, nil
}
