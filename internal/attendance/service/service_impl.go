package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/internal/attendance/domain"
	"github.com/fieldhr/rollcall/internal/config"
	employeedomain "github.com/fieldhr/rollcall/internal/employee/domain"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxWorkingDays = 31

type Params struct {
	fx.In

	Logger     *zap.Logger
	DB         *gorm.DB
	Node       *snowflake.Node
	Policy     *config.PolicyHolder
	Repository domain.Repository
	Employees  employeedomain.Service
}

type service struct {
	log       *zap.Logger
	db        *gorm.DB
	node      *snowflake.Node
	policy    *config.PolicyHolder
	repo      domain.Repository
	employees employeedomain.Service
}

func New(p Params) domain.Service {
	return &service{
		log:       p.Logger.Named("attendance.service"),
		db:        p.DB,
		node:      p.Node,
		policy:    p.Policy,
		repo:      p.Repository,
		employees: p.Employees,
	}
}

// resolvedRecord is a submission row that passed shape validation and
// still needs an eligibility decision against the employee directory.
type resolvedRecord struct {
	index         int
	empID         string
	approverEmpID string
	year          int
	month         int
	workingDays   int
	leavesTaken   int
}

func (s *service) Submit(ctx context.Context, req domain.SubmitAttendanceRequest) (domain.SubmitAttendanceResponse, error) {
	if len(req.Records) == 0 {
		return domain.SubmitAttendanceResponse{}, domain.ErrEmptyBatch
	}

	// A bad batch period is not fatal: rows carrying their own year and
	// month overrides still resolve, the rest classify as malformed.
	outcomes := make([]domain.RecordOutcome, len(req.Records))
	resolved := make([]resolvedRecord, 0, len(req.Records))
	for i, rec := range req.Records {
		outcomes[i] = domain.RecordOutcome{Index: i, EmpID: rec.EmpID}

		row, ok := resolveRecord(i, rec, req.Year, req.Month)
		if !ok {
			outcomes[i].Status = domain.StatusSkipped
			outcomes[i].Reason = domain.ReasonMalformed
			continue
		}
		resolved = append(resolved, row)
	}

	empIDs := make([]string, 0, len(resolved))
	for _, row := range resolved {
		empIDs = append(empIDs, row.empID)
	}

	directory, err := s.employees.DirectoryByEmpIDs(ctx, empIDs)
	if err != nil {
		return domain.SubmitAttendanceResponse{}, err
	}

	allowance := s.policy.Get().LeaveAllowance
	accepted := make([]*domain.MonthlyAttendance, 0, len(resolved))
	for _, row := range resolved {
		profile, ok := directory[row.empID]
		if !ok {
			outcomes[row.index].Status = domain.StatusSkipped
			outcomes[row.index].Reason = domain.ReasonUnknownEmployee
			continue
		}

		period := domain.ResolvePeriod(row.year, row.month, profile.BillingStartDay)
		if period.EndsBefore(profile.DOJ) {
			outcomes[row.index].Status = domain.StatusSkipped
			outcomes[row.index].Reason = domain.ReasonBeforeJoining
			continue
		}
		if profile.ResignationDate != nil && period.BeginsAfter(*profile.ResignationDate) {
			outcomes[row.index].Status = domain.StatusSkipped
			outcomes[row.index].Reason = domain.ReasonAfterResignation
			continue
		}

		outcomes[row.index].Status = domain.StatusAccepted
		accepted = append(accepted, &domain.MonthlyAttendance{
			ID:            s.node.Generate(),
			EmpID:         row.empID,
			ApproverEmpID: row.approverEmpID,
			Year:          row.year,
			Month:         row.month,
			WorkingDays:   row.workingDays,
			LeavesTaken:   row.leavesTaken,
			LossOfPay:     lossOfPay(row.leavesTaken, allowance),
		})
	}

	if len(accepted) > 0 {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, rec := range accepted {
				if err := s.repo.DeleteByPeriod(ctx, tx, rec.EmpID, rec.Year, rec.Month); err != nil {
					return err
				}
				if err := s.repo.Insert(ctx, tx, rec); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			s.log.Error("failed to persist attendance batch", zap.Error(err))
			return domain.SubmitAttendanceResponse{}, err
		}
	}

	resp := domain.SubmitAttendanceResponse{Results: outcomes}
	for _, o := range outcomes {
		if o.Status == domain.StatusAccepted {
			resp.Accepted++
		} else {
			resp.Skipped++
		}
	}

	s.log.Info("attendance batch reconciled",
		zap.Int("accepted", resp.Accepted),
		zap.Int("skipped", resp.Skipped),
	)
	return resp, nil
}

func (s *service) Report(ctx context.Context, req domain.ReportRequest) (domain.ReportResponse, error) {
	if req.Year < 0 || req.Month < 0 || req.Month > 12 {
		return domain.ReportResponse{}, domain.ErrInvalidPeriod
	}

	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	filter := domain.ReportFilter{
		Year:          req.Year,
		Month:         req.Month,
		EmpID:         req.EmpID,
		ApproverEmpID: req.ApproverEmpID,
		VendorName:    req.VendorName,
		Designation:   req.Designation,
		Resigned:      req.Resigned,
	}
	records, err := s.repo.List(ctx, s.db, filter, page)
	if err != nil {
		s.log.Error("failed to list attendance", zap.Error(err))
		return domain.ReportResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(records, page.PageSize, func(r *domain.MonthlyAttendance) string {
		token, _ := pagination.EncodeCursor(pagination.Cursor{ID: r.ID.String()})
		return token
	})
	if len(records) > page.PageSize {
		records = records[:page.PageSize]
	}

	resp := domain.ReportResponse{PageInfo: *pageInfo}
	resp.Records = make([]domain.MonthlyAttendance, 0, len(records))
	for _, r := range records {
		resp.Records = append(resp.Records, *r)
	}
	return resp, nil
}

func resolveRecord(index int, rec domain.AttendanceRecord, batchYear, batchMonth int) (resolvedRecord, bool) {
	year, month := batchYear, batchMonth
	if rec.Year != nil {
		year = *rec.Year
	}
	if rec.Month != nil {
		month = *rec.Month
	}

	if rec.EmpID == "" || !validPeriod(year, month) {
		return resolvedRecord{}, false
	}
	if rec.WorkingDays == nil || *rec.WorkingDays < 0 || *rec.WorkingDays > maxWorkingDays {
		return resolvedRecord{}, false
	}
	if rec.LeavesTaken == nil || *rec.LeavesTaken < 0 {
		return resolvedRecord{}, false
	}

	return resolvedRecord{
		index:         index,
		empID:         rec.EmpID,
		approverEmpID: rec.ApproverEmpID,
		year:          year,
		month:         month,
		workingDays:   *rec.WorkingDays,
		leavesTaken:   *rec.LeavesTaken,
	}, true
}

func validPeriod(year, month int) bool {
	return year >= 1 && month >= 1 && month <= 12
}

func lossOfPay(leavesTaken, allowance int) int {
	if allowance < 0 {
		allowance = 0
	}
	if leavesTaken <= allowance {
		return 0
	}
	return leavesTaken - allowance
}
