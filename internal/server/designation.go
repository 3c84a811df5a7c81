package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	designationdomain "github.com/fieldhr/rollcall/internal/designation/domain"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

type createDesignationRequest struct {
	Title      string `json:"title"`
	VendorName string `json:"vendor_name"`
}

func (s *Server) CreateDesignation(c *gin.Context) {
	var req createDesignationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.designationSvc.Create(c.Request.Context(), designationdomain.CreateDesignationRequest{
		Title:      strings.TrimSpace(req.Title),
		VendorName: strings.TrimSpace(req.VendorName),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListDesignations(c *gin.Context) {
	var query struct {
		pagination.Pagination
		VendorName string `form:"vendor_name"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.designationSvc.List(c.Request.Context(), designationdomain.ListDesignationRequest{
		PageToken:  query.PageToken,
		PageSize:   query.PageSize,
		VendorName: strings.TrimSpace(query.VendorName),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isDesignationValidationError(err error) bool {
	switch err {
	case designationdomain.ErrInvalidTitle,
		designationdomain.ErrInvalidVendor:
		return true
	default:
		return false
	}
}
