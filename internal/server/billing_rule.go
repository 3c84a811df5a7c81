package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	billingruledomain "github.com/fieldhr/rollcall/internal/billingrule/domain"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

type createBillingCycleRuleRequest struct {
	RuleID     string `json:"rule_id"`
	StartDay   int    `json:"start_day"`
	VendorName string `json:"vendor_name"`
}

func (s *Server) CreateBillingCycleRule(c *gin.Context) {
	var req createBillingCycleRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.billingRuleSvc.Create(c.Request.Context(), billingruledomain.CreateBillingCycleRuleRequest{
		RuleID:     strings.TrimSpace(req.RuleID),
		StartDay:   req.StartDay,
		VendorName: strings.TrimSpace(req.VendorName),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListBillingCycleRules(c *gin.Context) {
	var query struct {
		pagination.Pagination
		VendorName string `form:"vendor_name"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.billingRuleSvc.List(c.Request.Context(), billingruledomain.ListBillingCycleRuleRequest{
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

func isBillingRuleValidationError(err error) bool {
	switch err {
	case billingruledomain.ErrInvalidRuleID,
		billingruledomain.ErrInvalidStartDay,
		billingruledomain.ErrInvalidVendor:
		return true
	default:
		return false
	}
}
