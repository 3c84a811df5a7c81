package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	approverdomain "github.com/fieldhr/rollcall/internal/approver/domain"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

type createApproverRequest struct {
	EmpID        string `json:"emp_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ManagerEmpID string `json:"manager_emp_id"`
	ManagerName  string `json:"manager_name"`
	ManagerEmail string `json:"manager_email"`
}

func (s *Server) CreateApprover(c *gin.Context) {
	var req createApproverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.approverSvc.Create(c.Request.Context(), approverdomain.CreateApproverRequest{
		EmpID:        strings.TrimSpace(req.EmpID),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Password:     req.Password,
		ManagerEmpID: strings.TrimSpace(req.ManagerEmpID),
		ManagerName:  strings.TrimSpace(req.ManagerName),
		ManagerEmail: strings.TrimSpace(req.ManagerEmail),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListApprovers(c *gin.Context) {
	var query struct {
		pagination.Pagination
		EmpID string `form:"emp_id"`
		Email string `form:"email"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.approverSvc.List(c.Request.Context(), approverdomain.ListApproverRequest{
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
		EmpID:     strings.TrimSpace(query.EmpID),
		Email:     strings.TrimSpace(query.Email),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isApproverValidationError(err error) bool {
	switch err {
	case approverdomain.ErrInvalidEmpID,
		approverdomain.ErrInvalidName,
		approverdomain.ErrInvalidEmail,
		approverdomain.ErrInvalidPassword:
		return true
	default:
		return false
	}
}
