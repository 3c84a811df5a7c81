package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	billingdomain "github.com/fieldhr/rollcall/internal/billingrule/domain"
	"github.com/fieldhr/rollcall/internal/employee/domain"
	"github.com/fieldhr/rollcall/pkg/db"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultBillingStartDay = 1

type Params struct {
	fx.In

	Logger       *zap.Logger
	DB           *gorm.DB
	Node         *snowflake.Node
	Repository   domain.Repository
	BillingRules billingdomain.Service
}

type service struct {
	log   *zap.Logger
	db    *gorm.DB
	node  *snowflake.Node
	repo  domain.Repository
	rules billingdomain.Service
}

func New(p Params) domain.Service {
	return &service{
		log:   p.Logger.Named("employee.service"),
		db:    p.DB,
		node:  p.Node,
		repo:  p.Repository,
		rules: p.BillingRules,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateEmployeeRequest) (domain.Employee, error) {
	empID := strings.TrimSpace(req.EmpID)
	if empID == "" {
		return domain.Employee{}, domain.ErrInvalidEmpID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Employee{}, domain.ErrInvalidName
	}

	doj, err := parseDate(req.DOJ)
	if err != nil || doj == nil {
		return domain.Employee{}, domain.ErrInvalidDate
	}
	dob, err := parseDate(req.DOB)
	if err != nil {
		return domain.Employee{}, domain.ErrInvalidDate
	}

	ruleID := strings.TrimSpace(req.BillingRuleID)
	if ruleID != "" {
		if _, err := s.rules.GetByRuleID(ctx, ruleID); err != nil {
			if errors.Is(err, billingdomain.ErrNotFound) {
				return domain.Employee{}, domain.ErrInvalidBillingRule
			}
			return domain.Employee{}, err
		}
	}

	var designationID snowflake.ID
	if raw := strings.TrimSpace(req.DesignationID); raw != "" {
		designationID, err = snowflake.ParseString(raw)
		if err != nil {
			return domain.Employee{}, domain.ErrInvalidDesignation
		}
	}

	employee := domain.Employee{
		ID:            s.node.Generate(),
		EmpID:         empID,
		Name:          name,
		Gender:        strings.TrimSpace(req.Gender),
		State:         strings.TrimSpace(req.State),
		Location:      strings.TrimSpace(req.Location),
		VendorName:    strings.TrimSpace(req.VendorName),
		ApproverEmpID: strings.TrimSpace(req.ApproverEmpID),
		BillingRuleID: ruleID,
		DesignationID: designationID,
		DOB:           dob,
		DOJ:           *doj,
	}

	if err := s.repo.Insert(ctx, s.db, &employee); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Employee{}, domain.ErrDuplicate
		}
		s.log.Error("failed to create employee", zap.Error(err))
		return domain.Employee{}, err
	}

	return employee, nil
}

func (s *service) List(ctx context.Context, req domain.ListEmployeeRequest) (domain.ListEmployeeResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	filter := domain.ListEmployeeFilter{
		VendorName:    req.VendorName,
		Location:      req.Location,
		ApproverEmpID: req.ApproverEmpID,
		Resigned:      req.Resigned,
	}

	employees, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		s.log.Error("failed to list employees", zap.Error(err))
		return domain.ListEmployeeResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(employees, page.PageSize, func(e *domain.Employee) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: e.ID.String()})
		return token
	})
	if len(employees) > page.PageSize {
		employees = employees[:page.PageSize]
	}

	resp := domain.ListEmployeeResponse{PageInfo: *pageInfo}
	resp.Employees = make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		resp.Employees = append(resp.Employees, *e)
	}
	return resp, nil
}

func (s *service) GetByEmpID(ctx context.Context, empID string) (domain.Employee, error) {
	employee, err := s.repo.FindByEmpID(ctx, s.db, empID)
	if err != nil {
		s.log.Error("failed to get employee", zap.Error(err))
		return domain.Employee{}, err
	}
	if employee == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	return *employee, nil
}

func (s *service) Resign(ctx context.Context, req domain.ResignEmployeeRequest) (domain.Employee, error) {
	date, err := parseDate(req.ResignationDate)
	if err != nil || date == nil {
		return domain.Employee{}, domain.ErrInvalidDate
	}

	employee, err := s.repo.FindByEmpID(ctx, s.db, req.EmpID)
	if err != nil {
		s.log.Error("failed to get employee", zap.Error(err))
		return domain.Employee{}, err
	}
	if employee == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	if date.Before(employee.DOJ) {
		return domain.Employee{}, domain.ErrResignationBeforeJoin
	}

	if err := s.repo.MarkResigned(ctx, s.db, req.EmpID, *date); err != nil {
		s.log.Error("failed to mark employee resigned", zap.Error(err))
		return domain.Employee{}, err
	}

	employee.Resigned = true
	employee.ResignationDate = date
	return *employee, nil
}

// DirectoryByEmpIDs resolves employees and their billing anchors in two
// batched queries, so attendance reconciliation never issues per-row
// lookups.
func (s *service) DirectoryByEmpIDs(ctx context.Context, empIDs []string) (map[string]domain.BillingProfile, error) {
	employees, err := s.repo.FindByEmpIDs(ctx, s.db, dedupe(empIDs))
	if err != nil {
		s.log.Error("failed to load employee directory", zap.Error(err))
		return nil, err
	}

	startDays := make(map[string]int)
	directory := make(map[string]domain.BillingProfile, len(employees))
	for _, e := range employees {
		startDay := defaultBillingStartDay
		if e.BillingRuleID != "" {
			day, ok := startDays[e.BillingRuleID]
			if !ok {
				rule, err := s.rules.GetByRuleID(ctx, e.BillingRuleID)
				if err != nil {
					if !errors.Is(err, billingdomain.ErrNotFound) {
						return nil, err
					}
					day = defaultBillingStartDay
				} else {
					day = rule.StartDay
				}
				startDays[e.BillingRuleID] = day
			}
			startDay = day
		}

		directory[e.EmpID] = domain.BillingProfile{
			EmpID:           e.EmpID,
			DOJ:             e.DOJ,
			ResignationDate: e.ResignationDate,
			Resigned:        e.Resigned,
			BillingStartDay: startDay,
		}
	}
	return directory, nil
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
