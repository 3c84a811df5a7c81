package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/internal/billingrule/domain"
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
	Store  repository.Repository[domain.BillingCycleRule]
}

type service struct {
	log   *zap.Logger
	node  *snowflake.Node
	store repository.Repository[domain.BillingCycleRule]
}

func New(p Params) domain.Service {
	return &service{
		log:   p.Logger.Named("billingrule.service"),
		node:  p.Node,
		store: p.Store,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateBillingCycleRuleRequest) (domain.BillingCycleRule, error) {
	ruleID := strings.TrimSpace(req.RuleID)
	if ruleID == "" {
		return domain.BillingCycleRule{}, domain.ErrInvalidRuleID
	}
	if req.StartDay < 1 || req.StartDay > 31 {
		return domain.BillingCycleRule{}, domain.ErrInvalidStartDay
	}
	vendorName := strings.TrimSpace(req.VendorName)
	if vendorName == "" {
		return domain.BillingCycleRule{}, domain.ErrInvalidVendor
	}

	rule := domain.BillingCycleRule{
		ID:         s.node.Generate(),
		RuleID:     ruleID,
		StartDay:   req.StartDay,
		VendorName: vendorName,
	}

	if err := s.store.Create(ctx, &rule); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.BillingCycleRule{}, domain.ErrDuplicate
		}
		s.log.Error("failed to create billing cycle rule", zap.Error(err))
		return domain.BillingCycleRule{}, err
	}

	return rule, nil
}

func (s *service) List(ctx context.Context, req domain.ListBillingCycleRuleRequest) (domain.ListBillingCycleRuleResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	filter := domain.BillingCycleRule{VendorName: req.VendorName}
	rules, err := s.store.Find(ctx, &filter,
		option.WithOrder("id DESC"),
		option.ApplyPagination(page),
	)
	if err != nil {
		s.log.Error("failed to list billing cycle rules", zap.Error(err))
		return domain.ListBillingCycleRuleResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(rules, page.PageSize, func(r *domain.BillingCycleRule) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: r.ID.String()})
		return token
	})
	if len(rules) > page.PageSize {
		rules = rules[:page.PageSize]
	}

	resp := domain.ListBillingCycleRuleResponse{PageInfo: *pageInfo}
	resp.Rules = make([]domain.BillingCycleRule, 0, len(rules))
	for _, r := range rules {
		resp.Rules = append(resp.Rules, *r)
	}
	return resp, nil
}

func (s *service) GetByRuleID(ctx context.Context, ruleID string) (domain.BillingCycleRule, error) {
	rule, err := s.store.FindOne(ctx, &domain.BillingCycleRule{RuleID: ruleID})
	if err != nil {
		s.log.Error("failed to get billing cycle rule", zap.Error(err))
		return domain.BillingCycleRule{}, err
	}
	if rule == nil {
		return domain.BillingCycleRule{}, domain.ErrNotFound
	}
	return *rule, nil
}
