package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	approverdomain "github.com/fieldhr/rollcall/internal/approver/domain"
	authdomain "github.com/fieldhr/rollcall/internal/auth/domain"
	"github.com/fieldhr/rollcall/internal/auth/password"
	authservice "github.com/fieldhr/rollcall/internal/auth/service"
	"github.com/fieldhr/rollcall/internal/config"
)

type approverStub struct {
	approvers map[string]approverdomain.Approver
}

func (s *approverStub) GetByEmpID(_ context.Context, empID string) (approverdomain.Approver, error) {
	if a, ok := s.approvers[empID]; ok {
		return a, nil
	}
	return approverdomain.Approver{}, approverdomain.ErrNotFound
}

func (s *approverStub) Create(context.Context, approverdomain.CreateApproverRequest) (approverdomain.Approver, error) {
	return approverdomain.Approver{}, nil
}

func (s *approverStub) List(context.Context, approverdomain.ListApproverRequest) (approverdomain.ListApproverResponse, error) {
	return approverdomain.ListApproverResponse{}, nil
}

func setupAdminRoute(t *testing.T) (*gin.Engine, authdomain.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := password.Hash("pass")
	if err != nil {
		t.Fatal(err)
	}

	authSvc := authservice.New(authservice.Params{
		Logger: zap.NewNop(),
		Config: config.Config{
			AdminUsername: "admin",
			AdminPassword: "admin",
			AuthJWTSecret: "test-secret",
		},
		Policy: config.NewStaticPolicyHolder(config.DefaultPolicyConfig()),
		Approvers: &approverStub{approvers: map[string]approverdomain.Approver{
			"A001": {EmpID: "A001", PasswordHash: hash},
		}},
	})

	srv := &Server{authSvc: authSvc}

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())
	engine.GET("/api/ping", srv.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return engine, authSvc
}

func TestAdminRequired(t *testing.T) {
	engine, authSvc := setupAdminRoute(t)

	adminLogin, err := authSvc.Login(context.Background(), authdomain.LoginRequest{Username: "admin", Password: "admin"})
	assert.NoError(t, err)

	approverLogin, err := authSvc.Login(context.Background(), authdomain.LoginRequest{Username: "A001", Password: "pass"})
	assert.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "non-admin token", authHeader: "Bearer " + approverLogin.Token, wantStatus: http.StatusForbidden},
		{name: "admin token", authHeader: "Bearer " + adminLogin.Token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
