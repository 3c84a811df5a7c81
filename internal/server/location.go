package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	locationdomain "github.com/fieldhr/rollcall/internal/location/domain"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

type createLocationRequest struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

func (s *Server) CreateLocation(c *gin.Context) {
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.locationSvc.Create(c.Request.Context(), locationdomain.CreateLocationRequest{
		Name:  strings.TrimSpace(req.Name),
		State: strings.TrimSpace(req.State),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListLocations(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name  string `form:"name"`
		State string `form:"state"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.locationSvc.List(c.Request.Context(), locationdomain.ListLocationRequest{
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
		Name:      strings.TrimSpace(query.Name),
		State:     strings.TrimSpace(query.State),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isLocationValidationError(err error) bool {
	switch err {
	case locationdomain.ErrInvalidName,
		locationdomain.ErrInvalidState:
		return true
	default:
		return false
	}
}
