package domain

import (
	"context"
	"errors"

	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

type RecordStatus string

const (
	StatusAccepted RecordStatus = "accepted"
	StatusSkipped  RecordStatus = "skipped"
)

type SkipReason string

const (
	ReasonMalformed        SkipReason = "malformed"
	ReasonUnknownEmployee  SkipReason = "unknown_employee"
	ReasonBeforeJoining    SkipReason = "before_joining"
	ReasonAfterResignation SkipReason = "after_resignation"
)

// AttendanceRecord is one row of a monthly submission. Year and Month
// default to the batch period when omitted.
type AttendanceRecord struct {
	EmpID         string `json:"emp_id"`
	ApproverEmpID string `json:"approver_emp_id,omitempty"`
	Year          *int   `json:"year,omitempty"`
	Month         *int   `json:"month,omitempty"`
	WorkingDays   *int   `json:"working_days"`
	LeavesTaken   *int   `json:"leaves_taken"`
}

type SubmitAttendanceRequest struct {
	Year    int                `json:"year"`
	Month   int                `json:"month"`
	Records []AttendanceRecord `json:"records"`
}

// RecordOutcome reports what happened to one submitted row. Index refers
// to the row's position in the request.
type RecordOutcome struct {
	Index  int          `json:"index"`
	EmpID  string       `json:"emp_id,omitempty"`
	Status RecordStatus `json:"status"`
	Reason SkipReason   `json:"reason,omitempty"`
}

type SubmitAttendanceResponse struct {
	Accepted int             `json:"accepted"`
	Skipped  int             `json:"skipped"`
	Results  []RecordOutcome `json:"results"`
}

// ReportFilter is a conjunctive filter: every set field must match.
// Vendor, designation and resigned criteria resolve through the
// employee directory.
type ReportFilter struct {
	Year          int
	Month         int
	EmpID         string
	ApproverEmpID string
	VendorName    string
	Designation   string
	Resigned      *bool
}

type ReportRequest struct {
	PageToken     string
	PageSize      int
	Year          int
	Month         int
	EmpID         string
	ApproverEmpID string
	VendorName    string
	Designation   string
	Resigned      *bool
}

type ReportResponse struct {
	pagination.PageInfo
	Records []MonthlyAttendance `json:"records"`
}

type Repository interface {
	DeleteByPeriod(ctx context.Context, db *gorm.DB, empID string, year, month int) error
	Insert(ctx context.Context, db *gorm.DB, record *MonthlyAttendance) error
	List(ctx context.Context, db *gorm.DB, filter ReportFilter, page pagination.Pagination) ([]*MonthlyAttendance, error)
}

type Service interface {
	Submit(ctx context.Context, req SubmitAttendanceRequest) (SubmitAttendanceResponse, error)
	Report(ctx context.Context, req ReportRequest) (ReportResponse, error)
}

var (
	ErrInvalidPeriod = errors.New("invalid_attendance_period")
	ErrEmptyBatch    = errors.New("empty_attendance_batch")
)
