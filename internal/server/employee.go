package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	employeedomain "github.com/fieldhr/rollcall/internal/employee/domain"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

type createEmployeeRequest struct {
	EmpID         string `json:"emp_id"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	State         string `json:"state"`
	Location      string `json:"location"`
	VendorName    string `json:"vendor_name"`
	ApproverEmpID string `json:"approver_emp_id"`
	BillingRuleID string `json:"billing_rule_id"`
	DesignationID string `json:"designation_id"`
	DOB           string `json:"dob"`
	DOJ           string `json:"doj"`
}

type resignEmployeeRequest struct {
	ResignationDate string `json:"resignation_date"`
}

func (s *Server) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.Create(c.Request.Context(), employeedomain.CreateEmployeeRequest{
		EmpID:         strings.TrimSpace(req.EmpID),
		Name:          strings.TrimSpace(req.Name),
		Gender:        strings.TrimSpace(req.Gender),
		State:         strings.TrimSpace(req.State),
		Location:      strings.TrimSpace(req.Location),
		VendorName:    strings.TrimSpace(req.VendorName),
		ApproverEmpID: strings.TrimSpace(req.ApproverEmpID),
		BillingRuleID: strings.TrimSpace(req.BillingRuleID),
		DesignationID: strings.TrimSpace(req.DesignationID),
		DOB:           strings.TrimSpace(req.DOB),
		DOJ:           strings.TrimSpace(req.DOJ),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListEmployees(c *gin.Context) {
	var query struct {
		pagination.Pagination
		VendorName    string `form:"vendor_name"`
		Location      string `form:"location"`
		ApproverEmpID string `form:"approver_emp_id"`
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

	resp, err := s.employeeSvc.List(c.Request.Context(), employeedomain.ListEmployeeRequest{
		PageToken:     query.PageToken,
		PageSize:      query.PageSize,
		VendorName:    strings.TrimSpace(query.VendorName),
		Location:      strings.TrimSpace(query.Location),
		ApproverEmpID: strings.TrimSpace(query.ApproverEmpID),
		Resigned:      resigned,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetEmployeeByEmpID(c *gin.Context) {
	empID := strings.TrimSpace(c.Param("emp_id"))
	resp, err := s.employeeSvc.GetByEmpID(c.Request.Context(), empID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ResignEmployee(c *gin.Context) {
	var req resignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.Resign(c.Request.Context(), employeedomain.ResignEmployeeRequest{
		EmpID:           strings.TrimSpace(c.Param("emp_id")),
		ResignationDate: strings.TrimSpace(req.ResignationDate),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isEmployeeValidationError(err error) bool {
	switch err {
	case employeedomain.ErrInvalidEmpID,
		employeedomain.ErrInvalidName,
		employeedomain.ErrInvalidDate,
		employeedomain.ErrInvalidBillingRule,
		employeedomain.ErrInvalidDesignation,
		employeedomain.ErrResignationBeforeJoin:
		return true
	default:
		return false
	}
}
