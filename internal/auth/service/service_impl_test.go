package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	approverdomain "github.com/fieldhr/rollcall/internal/approver/domain"
	"github.com/fieldhr/rollcall/internal/auth/domain"
	"github.com/fieldhr/rollcall/internal/auth/password"
	"github.com/fieldhr/rollcall/internal/config"
)

type approverMock struct {
	mock.Mock
}

func (m *approverMock) GetByEmpID(ctx context.Context, empID string) (approverdomain.Approver, error) {
	args := m.Called(ctx, empID)
	return args.Get(0).(approverdomain.Approver), args.Error(1)
}

func (m *approverMock) Create(context.Context, approverdomain.CreateApproverRequest) (approverdomain.Approver, error) {
	return approverdomain.Approver{}, nil
}
func (m *approverMock) List(context.Context, approverdomain.ListApproverRequest) (approverdomain.ListApproverResponse, error) {
	return approverdomain.ListApproverResponse{}, nil
}

func newTestService(approvers *approverMock) domain.Service {
	return New(Params{
		Logger: zap.NewNop(),
		Config: config.Config{
			AdminUsername: "admin",
			AdminPassword: "admin",
			AuthJWTSecret: "test-secret",
		},
		Policy:    config.NewStaticPolicyHolder(config.DefaultPolicyConfig()),
		Approvers: approvers,
	})
}

func TestLogin_Admin(t *testing.T) {
	svc := newTestService(new(approverMock))

	resp, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "admin"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.IsAdmin)

	claims, err := svc.Verify(context.Background(), resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestLogin_AdminWrongPassword(t *testing.T) {
	svc := newTestService(new(approverMock))

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_Approver(t *testing.T) {
	hash, err := password.Hash("pass")
	assert.NoError(t, err)

	approvers := new(approverMock)
	approvers.On("GetByEmpID", mock.Anything, "A001").Return(approverdomain.Approver{
		EmpID:        "A001",
		PasswordHash: hash,
	}, nil)

	svc := newTestService(approvers)

	resp, err := svc.Login(context.Background(), domain.LoginRequest{Username: "A001", Password: "pass"})
	assert.NoError(t, err)
	assert.False(t, resp.IsAdmin)

	claims, err := svc.Verify(context.Background(), resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, "A001", claims.Username)
	assert.False(t, claims.IsAdmin, "approver tokens never carry admin")

	_, err = svc.Login(context.Background(), domain.LoginRequest{Username: "A001", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	approvers := new(approverMock)
	approvers.On("GetByEmpID", mock.Anything, "ghost").Return(approverdomain.Approver{}, approverdomain.ErrNotFound)

	svc := newTestService(approvers)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "ghost", Password: "pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerify_TamperedToken(t *testing.T) {
	svc := newTestService(new(approverMock))

	resp, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "admin"})
	assert.NoError(t, err)

	_, err = svc.Verify(context.Background(), resp.Token+"x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = svc.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
