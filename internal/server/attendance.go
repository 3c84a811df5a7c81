package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	attendancedomain "github.com/fieldhr/rollcall/internal/attendance/domain"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

func (s *Server) SubmitAttendance(c *gin.Context) {
	var req attendancedomain.SubmitAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.attendanceSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) AttendanceReport(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Year          int    `form:"year"`
		Month         int    `form:"month"`
		EmpID         string `form:"emp_id"`
		ApproverEmpID string `form:"approver_emp_id"`
		VendorName    string `form:"vendor_name"`
		Designation   string `form:"designation"`
		Resigned      string `form:"resigned"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resigned, err := parseOptionalBool(query.Resigned)
	if err != nil {
		AbortWithError(c, newValidationError("resigned", "invalid_resigned", "invalid resigned"))
		return
	}

	resp, err := s.attendanceSvc.Report(c.Request.Context(), attendancedomain.ReportRequest{
		PageToken:     query.PageToken,
		PageSize:      query.PageSize,
		Year:          query.Year,
		Month:         query.Month,
		EmpID:         strings.TrimSpace(query.EmpID),
		ApproverEmpID: strings.TrimSpace(query.ApproverEmpID),
		VendorName:    strings.TrimSpace(query.VendorName),
		Designation:   strings.TrimSpace(query.Designation),
		Resigned:      resigned,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
