package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fieldhr/rollcall/internal/attendance/domain"
	"github.com/fieldhr/rollcall/internal/attendance/repository"
	"github.com/fieldhr/rollcall/internal/config"
	designationdomain "github.com/fieldhr/rollcall/internal/designation/domain"
	employeedomain "github.com/fieldhr/rollcall/internal/employee/domain"
)

type employeeMock struct {
	mock.Mock
}

func (m *employeeMock) DirectoryByEmpIDs(ctx context.Context, empIDs []string) (map[string]employeedomain.BillingProfile, error) {
	args := m.Called(ctx, empIDs)
	res := args.Get(0)
	if res == nil {
		return nil, args.Error(1)
	}
	return res.(map[string]employeedomain.BillingProfile), args.Error(1)
}

func (m *employeeMock) Create(context.Context, employeedomain.CreateEmployeeRequest) (employeedomain.Employee, error) {
	return employeedomain.Employee{}, nil
}
func (m *employeeMock) List(context.Context, employeedomain.ListEmployeeRequest) (employeedomain.ListEmployeeResponse, error) {
	return employeedomain.ListEmployeeResponse{}, nil
}
func (m *employeeMock) GetByEmpID(context.Context, string) (employeedomain.Employee, error) {
	return employeedomain.Employee{}, nil
}
func (m *employeeMock) Resign(context.Context, employeedomain.ResignEmployeeRequest) (employeedomain.Employee, error) {
	return employeedomain.Employee{}, nil
}

func newTestService(t *testing.T, employees *employeeMock) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.MonthlyAttendance{}, &employeedomain.Employee{}, &designationdomain.Designation{}); err != nil {
		t.Fatal(err)
	}

	node, _ := snowflake.NewNode(1)

	svc := New(Params{
		Logger:     zap.NewNop(),
		DB:         db,
		Node:       node,
		Policy:     config.NewStaticPolicyHolder(config.DefaultPolicyConfig()),
		Repository: repository.Provide(),
		Employees:  employees,
	})
	return svc, db
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func profile(empID string, doj time.Time, startDay int) employeedomain.BillingProfile {
	return employeedomain.BillingProfile{
		EmpID:           empID,
		DOJ:             doj,
		BillingStartDay: startDay,
	}
}

func TestSubmit_LossOfPay(t *testing.T) {
	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(map[string]employeedomain.BillingProfile{
		"E001": profile("E001", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
	}, nil)

	svc, db := newTestService(t, employees)

	resp, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
		Year:  2023,
		Month: 3,
		Records: []domain.AttendanceRecord{
			{EmpID: "E001", ApproverEmpID: "A001", WorkingDays: intPtr(20), LeavesTaken: intPtr(5)},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Accepted)
	assert.Equal(t, domain.StatusAccepted, resp.Results[0].Status)

	var row domain.MonthlyAttendance
	assert.NoError(t, db.Where("emp_id = ? AND year = ? AND month = ?", "E001", 2023, 3).First(&row).Error)
	assert.Equal(t, 3, row.LossOfPay, "five leaves against an allowance of two")
	assert.Equal(t, "A001", row.ApproverEmpID)

	tests := []struct {
		leaves    int
		lossOfPay int
	}{
		{leaves: 1, lossOfPay: 0},
		{leaves: 2, lossOfPay: 0},
		{leaves: 7, lossOfPay: 5},
	}
	for _, tt := range tests {
		resp, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
			Year:  2023,
			Month: 3,
			Records: []domain.AttendanceRecord{
				{EmpID: "E001", WorkingDays: intPtr(20), LeavesTaken: intPtr(tt.leaves)},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Accepted)

		row = domain.MonthlyAttendance{}
		assert.NoError(t, db.Where("emp_id = ? AND year = ? AND month = ?", "E001", 2023, 3).First(&row).Error)
		assert.Equal(t, tt.lossOfPay, row.LossOfPay)
	}
}

func TestSubmit_ResubmissionReplaces(t *testing.T) {
	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(map[string]employeedomain.BillingProfile{
		"E001": profile("E001", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
	}, nil)

	svc, db := newTestService(t, employees)

	for _, workingDays := range []int{20, 22} {
		_, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
			Year:  2023,
			Month: 4,
			Records: []domain.AttendanceRecord{
				{EmpID: "E001", WorkingDays: intPtr(workingDays), LeavesTaken: intPtr(1)},
			},
		})
		assert.NoError(t, err)
	}

	var count int64
	assert.NoError(t, db.Model(&domain.MonthlyAttendance{}).Where("emp_id = ?", "E001").Count(&count).Error)
	assert.EqualValues(t, 1, count, "resubmission must replace, not duplicate")

	var row domain.MonthlyAttendance
	assert.NoError(t, db.Where("emp_id = ?", "E001").First(&row).Error)
	assert.Equal(t, 22, row.WorkingDays)
}

func TestSubmit_SkipReasons(t *testing.T) {
	doj := time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)
	resignation := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)

	joiner := profile("E010", doj, 1)
	leaver := profile("E020", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), 1)
	leaver.ResignationDate = &resignation
	leaver.Resigned = true
	lastDayJoiner := profile("E030", time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), 1)

	directory := map[string]employeedomain.BillingProfile{
		"E010": joiner,
		"E020": leaver,
		"E030": lastDayJoiner,
	}

	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(directory, nil)

	svc, _ := newTestService(t, employees)

	tests := []struct {
		name   string
		record domain.AttendanceRecord
		year   int
		month  int
		status domain.RecordStatus
		reason domain.SkipReason
	}{
		{
			name:   "before joining",
			record: domain.AttendanceRecord{EmpID: "E010", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			year:   2023, month: 1,
			status: domain.StatusSkipped,
			reason: domain.ReasonBeforeJoining,
		},
		{
			name:   "joining month accepted",
			record: domain.AttendanceRecord{EmpID: "E010", WorkingDays: intPtr(10), LeavesTaken: intPtr(0)},
			year:   2023, month: 2,
			status: domain.StatusAccepted,
		},
		{
			name:   "joining on period's last day accepted",
			record: domain.AttendanceRecord{EmpID: "E030", WorkingDays: intPtr(1), LeavesTaken: intPtr(0)},
			year:   2023, month: 1,
			status: domain.StatusAccepted,
		},
		{
			name:   "month before joining day",
			record: domain.AttendanceRecord{EmpID: "E030", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			year:   2022, month: 12,
			status: domain.StatusSkipped,
			reason: domain.ReasonBeforeJoining,
		},
		{
			name:   "resignation month accepted",
			record: domain.AttendanceRecord{EmpID: "E020", WorkingDays: intPtr(6), LeavesTaken: intPtr(0)},
			year:   2023, month: 6,
			status: domain.StatusAccepted,
		},
		{
			name:   "after resignation",
			record: domain.AttendanceRecord{EmpID: "E020", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			year:   2023, month: 7,
			status: domain.StatusSkipped,
			reason: domain.ReasonAfterResignation,
		},
		{
			name:   "unknown employee",
			record: domain.AttendanceRecord{EmpID: "E999", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			year:   2023, month: 3,
			status: domain.StatusSkipped,
			reason: domain.ReasonUnknownEmployee,
		},
		{
			name:   "missing working days",
			record: domain.AttendanceRecord{EmpID: "E010", LeavesTaken: intPtr(0)},
			year:   2023, month: 3,
			status: domain.StatusSkipped,
			reason: domain.ReasonMalformed,
		},
		{
			name:   "negative leaves",
			record: domain.AttendanceRecord{EmpID: "E010", WorkingDays: intPtr(20), LeavesTaken: intPtr(-1)},
			year:   2023, month: 3,
			status: domain.StatusSkipped,
			reason: domain.ReasonMalformed,
		},
		{
			name:   "blank emp id",
			record: domain.AttendanceRecord{WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			year:   2023, month: 3,
			status: domain.StatusSkipped,
			reason: domain.ReasonMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
				Year:    tt.year,
				Month:   tt.month,
				Records: []domain.AttendanceRecord{tt.record},
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.status, resp.Results[0].Status)
			assert.Equal(t, tt.reason, resp.Results[0].Reason)
		})
	}
}

func TestSubmit_MixedBatchKeepsOrder(t *testing.T) {
	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(map[string]employeedomain.BillingProfile{
		"E001": profile("E001", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
	}, nil)

	svc, db := newTestService(t, employees)

	resp, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
		Year:  2023,
		Month: 5,
		Records: []domain.AttendanceRecord{
			{EmpID: "E999", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			{EmpID: "E001", WorkingDays: intPtr(21), LeavesTaken: intPtr(3)},
			{EmpID: "", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Accepted)
	assert.Equal(t, 2, resp.Skipped)

	assert.Equal(t, 0, resp.Results[0].Index)
	assert.Equal(t, domain.ReasonUnknownEmployee, resp.Results[0].Reason)
	assert.Equal(t, domain.StatusAccepted, resp.Results[1].Status)
	assert.Equal(t, domain.ReasonMalformed, resp.Results[2].Reason)

	var count int64
	assert.NoError(t, db.Model(&domain.MonthlyAttendance{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "skipped rows never reach storage")
}

func TestSubmit_RowPeriodOverride(t *testing.T) {
	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(map[string]employeedomain.BillingProfile{
		"E001": profile("E001", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
	}, nil)

	svc, db := newTestService(t, employees)

	resp, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
		Year:  2023,
		Month: 8,
		Records: []domain.AttendanceRecord{
			{EmpID: "E001", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			{EmpID: "E001", Year: intPtr(2023), Month: intPtr(9), WorkingDays: intPtr(19), LeavesTaken: intPtr(0)},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Accepted)

	var months []int
	assert.NoError(t, db.Model(&domain.MonthlyAttendance{}).Where("emp_id = ?", "E001").Order("month").Pluck("month", &months).Error)
	assert.Equal(t, []int{8, 9}, months)
}

func TestSubmit_InvalidBatch(t *testing.T) {
	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(map[string]employeedomain.BillingProfile{
		"E001": profile("E001", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
	}, nil)

	svc, _ := newTestService(t, employees)

	_, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{Year: 2023, Month: 1})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)

	resp, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
		Year:    2023,
		Month:   13,
		Records: []domain.AttendanceRecord{{EmpID: "E001", WorkingDays: intPtr(1), LeavesTaken: intPtr(0)}},
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.ReasonMalformed, resp.Results[0].Reason)
}

func TestSubmit_BadHeaderPeriodSparesOverrideRows(t *testing.T) {
	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(map[string]employeedomain.BillingProfile{
		"E001": profile("E001", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
	}, nil)

	svc, _ := newTestService(t, employees)

	resp, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
		Year: 2023,
		Records: []domain.AttendanceRecord{
			{EmpID: "E001", Month: intPtr(6), WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			{EmpID: "E001", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Accepted)
	assert.Equal(t, domain.StatusAccepted, resp.Results[0].Status)
	assert.Equal(t, domain.ReasonMalformed, resp.Results[1].Reason)
}

func TestReport_FiltersByPeriod(t *testing.T) {
	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(map[string]employeedomain.BillingProfile{
		"E001": profile("E001", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
		"E002": profile("E002", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
	}, nil)

	svc, _ := newTestService(t, employees)

	_, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
		Year:  2023,
		Month: 3,
		Records: []domain.AttendanceRecord{
			{EmpID: "E001", WorkingDays: intPtr(20), LeavesTaken: intPtr(4)},
			{EmpID: "E002", WorkingDays: intPtr(18), LeavesTaken: intPtr(0)},
			{EmpID: "E001", Year: intPtr(2023), Month: intPtr(4), WorkingDays: intPtr(21), LeavesTaken: intPtr(0)},
		},
	})
	assert.NoError(t, err)

	resp, err := svc.Report(context.Background(), domain.ReportRequest{Year: 2023, Month: 3})
	assert.NoError(t, err)
	assert.Len(t, resp.Records, 2)

	resp, err = svc.Report(context.Background(), domain.ReportRequest{Year: 2023, Month: 3, EmpID: "E001"})
	assert.NoError(t, err)
	if assert.Len(t, resp.Records, 1) {
		assert.Equal(t, 2, resp.Records[0].LossOfPay)
	}

	// Month alone is a valid criterion, matching across all years.
	resp, err = svc.Report(context.Background(), domain.ReportRequest{Month: 4})
	assert.NoError(t, err)
	assert.Len(t, resp.Records, 1)

	resp, err = svc.Report(context.Background(), domain.ReportRequest{Year: 2023})
	assert.NoError(t, err)
	assert.Len(t, resp.Records, 3)

	_, err = svc.Report(context.Background(), domain.ReportRequest{Year: 2023, Month: 13})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestReport_DirectoryFilters(t *testing.T) {
	employees := new(employeeMock)
	employees.On("DirectoryByEmpIDs", mock.Anything, mock.Anything).Return(map[string]employeedomain.BillingProfile{
		"E001": profile("E001", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
		"E002": profile("E002", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1),
	}, nil)

	svc, db := newTestService(t, employees)

	assert.NoError(t, db.Create(&designationdomain.Designation{ID: snowflake.ID(11), Title: "Engineer", VendorName: "Acme Corp"}).Error)
	assert.NoError(t, db.Create(&designationdomain.Designation{ID: snowflake.ID(12), Title: "Analyst", VendorName: "Globex Inc"}).Error)
	assert.NoError(t, db.Create(&employeedomain.Employee{
		ID: snowflake.ID(1), EmpID: "E001", Name: "Eve", VendorName: "Acme Corp",
		DesignationID: snowflake.ID(11), DOJ: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
	assert.NoError(t, db.Create(&employeedomain.Employee{
		ID: snowflake.ID(2), EmpID: "E002", Name: "Frank", VendorName: "Globex Inc",
		DesignationID: snowflake.ID(12), Resigned: true, DOJ: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	_, err := svc.Submit(context.Background(), domain.SubmitAttendanceRequest{
		Year:  2023,
		Month: 3,
		Records: []domain.AttendanceRecord{
			{EmpID: "E001", ApproverEmpID: "A001", WorkingDays: intPtr(20), LeavesTaken: intPtr(0)},
			{EmpID: "E002", ApproverEmpID: "A002", WorkingDays: intPtr(18), LeavesTaken: intPtr(1)},
		},
	})
	assert.NoError(t, err)

	tests := []struct {
		name string
		req  domain.ReportRequest
		want []string
	}{
		{"by vendor", domain.ReportRequest{VendorName: "Acme Corp"}, []string{"E001"}},
		{"by designation substring", domain.ReportRequest{Designation: "gine"}, []string{"E001"}},
		{"designation ignores case", domain.ReportRequest{Designation: "ANALYST"}, []string{"E002"}},
		{"by resigned", domain.ReportRequest{Resigned: boolPtr(true)}, []string{"E002"}},
		{"by approver", domain.ReportRequest{ApproverEmpID: "A001"}, []string{"E001"}},
		{"criteria conjoin", domain.ReportRequest{VendorName: "Acme Corp", ApproverEmpID: "A002"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Report(context.Background(), tt.req)
			assert.NoError(t, err)
			got := make([]string, 0, len(resp.Records))
			for _, r := range resp.Records {
				got = append(got, r.EmpID)
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}
