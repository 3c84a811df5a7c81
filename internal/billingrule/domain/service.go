package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldhr/rollcall/pkg/db/pagination"
)

// BillingCycleRule defines where a vendor's monthly billing period starts.
// StartDay is clamped to the last day of shorter months when periods are
// resolved.
type BillingCycleRule struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	RuleID     string       `gorm:"column:rule_id;not null;uniqueIndex" json:"rule_id"`
	StartDay   int          `gorm:"column:start_day;not null" json:"start_day"`
	VendorName string       `gorm:"column:vendor_name;not null" json:"vendor_name"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (BillingCycleRule) TableName() string {
	return "billing_cycle_rules"
}

type CreateBillingCycleRuleRequest struct {
	RuleID     string `json:"rule_id"`
	StartDay   int    `json:"start_day"`
	VendorName string `json:"vendor_name"`
}

type ListBillingCycleRuleRequest struct {
	PageToken  string
	PageSize   int
	VendorName string
}

type ListBillingCycleRuleResponse struct {
	pagination.PageInfo
	Rules []BillingCycleRule `json:"billing_cycle_rules"`
}

type Service interface {
	Create(ctx context.Context, req CreateBillingCycleRuleRequest) (BillingCycleRule, error)
	List(ctx context.Context, req ListBillingCycleRuleRequest) (ListBillingCycleRuleResponse, error)
	GetByRuleID(ctx context.Context, ruleID string) (BillingCycleRule, error)
}

var (
	ErrInvalidRuleID   = errors.New("invalid_billing_rule_id")
	ErrInvalidStartDay = errors.New("invalid_billing_start_day")
	ErrInvalidVendor   = errors.New("invalid_billing_vendor")
	ErrDuplicate       = errors.New("billing_rule_exists")
	ErrNotFound        = errors.New("billing_rule_not_found")
)
