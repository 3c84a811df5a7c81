package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fieldhr/rollcall/internal/billingrule/domain"
	"github.com/fieldhr/rollcall/pkg/repository"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.BillingCycleRule{}); err != nil {
		t.Fatal(err)
	}

	node, _ := snowflake.NewNode(1)
	return New(Params{
		Logger: zap.NewNop(),
		Node:   node,
		Store:  repository.ProvideStore[domain.BillingCycleRule](db),
	})
}

func TestCreateRule_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		req     domain.CreateBillingCycleRuleRequest
		wantErr error
	}{
		{
			name:    "missing rule id",
			req:     domain.CreateBillingCycleRuleRequest{StartDay: 1, VendorName: "Acme Corp"},
			wantErr: domain.ErrInvalidRuleID,
		},
		{
			name:    "start day below range",
			req:     domain.CreateBillingCycleRuleRequest{RuleID: "BR1", StartDay: 0, VendorName: "Acme Corp"},
			wantErr: domain.ErrInvalidStartDay,
		},
		{
			name:    "start day above range",
			req:     domain.CreateBillingCycleRuleRequest{RuleID: "BR1", StartDay: 32, VendorName: "Acme Corp"},
			wantErr: domain.ErrInvalidStartDay,
		},
		{
			name:    "missing vendor",
			req:     domain.CreateBillingCycleRuleRequest{RuleID: "BR1", StartDay: 1},
			wantErr: domain.ErrInvalidVendor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateRule_DuplicateRuleID(t *testing.T) {
	svc := newTestService(t)

	req := domain.CreateBillingCycleRuleRequest{RuleID: "BR1", StartDay: 1, VendorName: "Acme Corp"}
	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGetByRuleID(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), domain.CreateBillingCycleRuleRequest{
		RuleID:     "BR2",
		StartDay:   15,
		VendorName: "Globex Inc",
	})
	assert.NoError(t, err)

	rule, err := svc.GetByRuleID(context.Background(), "BR2")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, rule.ID)
	assert.Equal(t, 15, rule.StartDay)

	_, err = svc.GetByRuleID(context.Background(), "BR9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListRules_FilterByVendor(t *testing.T) {
	svc := newTestService(t)

	for _, req := range []domain.CreateBillingCycleRuleRequest{
		{RuleID: "BR1", StartDay: 1, VendorName: "Acme Corp"},
		{RuleID: "BR2", StartDay: 15, VendorName: "Globex Inc"},
	} {
		_, err := svc.Create(context.Background(), req)
		assert.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), domain.ListBillingCycleRuleRequest{VendorName: "Acme Corp"})
	assert.NoError(t, err)
	if assert.Len(t, resp.Rules, 1) {
		assert.Equal(t, "BR1", resp.Rules[0].RuleID)
	}

	resp, err = svc.List(context.Background(), domain.ListBillingCycleRuleRequest{})
	assert.NoError(t, err)
	assert.Len(t, resp.Rules, 2)
}
