package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	approverdomain "github.com/fieldhr/rollcall/internal/approver/domain"
	"github.com/fieldhr/rollcall/internal/auth/password"
	billingruledomain "github.com/fieldhr/rollcall/internal/billingrule/domain"
	designationdomain "github.com/fieldhr/rollcall/internal/designation/domain"
	employeedomain "github.com/fieldhr/rollcall/internal/employee/domain"
	locationdomain "github.com/fieldhr/rollcall/internal/location/domain"
	vendordomain "github.com/fieldhr/rollcall/internal/vendors/domain"
)

const demoApproverPassword = "pass"

// EnsureDemoData seeds a small demo directory: two vendors with their
// locations, approvers, designations, billing rules and employees.
// Idempotent, existing rows are left untouched.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureVendors(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureLocations(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureApprovers(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureDesignations(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureBillingRules(ctx, tx, node); err != nil {
			return err
		}
		return ensureEmployees(ctx, tx, node)
	})
}

func ensureVendors(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	for _, name := range []string{"Acme Corp", "Globex Inc"} {
		var count int64
		if err := tx.WithContext(ctx).Model(&vendordomain.Vendor{}).Where("vendor_name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := tx.WithContext(ctx).Create(&vendordomain.Vendor{ID: node.Generate(), Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureLocations(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	locations := []locationdomain.Location{
		{Name: "NYC", State: "NY"},
		{Name: "LA", State: "CA"},
	}
	for _, l := range locations {
		var count int64
		if err := tx.WithContext(ctx).Model(&locationdomain.Location{}).Where("name = ?", l.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		l.ID = node.Generate()
		if err := tx.WithContext(ctx).Create(&l).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureApprovers(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	approvers := []approverdomain.Approver{
		{EmpID: "A001", Name: "Alice", Email: "alice@acme.com", ManagerEmpID: "M001", ManagerName: "Mary Manager", ManagerEmail: "mary@acme.com"},
		{EmpID: "A002", Name: "Bob", Email: "bob@globex.com", ManagerEmpID: "M002", ManagerName: "Ben Boss", ManagerEmail: "ben@globex.com"},
	}
	for _, a := range approvers {
		var count int64
		if err := tx.WithContext(ctx).Model(&approverdomain.Approver{}).Where("emp_id = ?", a.EmpID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hash, err := password.Hash(demoApproverPassword)
		if err != nil {
			return err
		}
		a.ID = node.Generate()
		a.PasswordHash = hash
		if err := tx.WithContext(ctx).Create(&a).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureDesignations(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	designations := []designationdomain.Designation{
		{Title: "Engineer", VendorName: "Acme Corp"},
		{Title: "Manager", VendorName: "Acme Corp"},
		{Title: "Analyst", VendorName: "Globex Inc"},
	}
	for _, d := range designations {
		var count int64
		if err := tx.WithContext(ctx).Model(&designationdomain.Designation{}).
			Where("title = ? AND vendor_name = ?", d.Title, d.VendorName).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		d.ID = node.Generate()
		if err := tx.WithContext(ctx).Create(&d).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureBillingRules(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	rules := []billingruledomain.BillingCycleRule{
		{RuleID: "BR1", StartDay: 1, VendorName: "Acme Corp"},
		{RuleID: "BR2", StartDay: 15, VendorName: "Globex Inc"},
	}
	for _, r := range rules {
		var count int64
		if err := tx.WithContext(ctx).Model(&billingruledomain.BillingCycleRule{}).Where("rule_id = ?", r.RuleID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		r.ID = node.Generate()
		if err := tx.WithContext(ctx).Create(&r).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureEmployees(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	employees := []employeedomain.Employee{
		{
			EmpID:         "E001",
			Name:          "Eve",
			Gender:        "Female",
			State:         "NY",
			Location:      "NYC",
			VendorName:    "Acme Corp",
			ApproverEmpID: "A001",
			BillingRuleID: "BR1",
			DOB:           datePtr(1990, 5, 10),
			DOJ:           date(2023, 1, 1),
		},
		{
			EmpID:         "E002",
			Name:          "Frank",
			Gender:        "Male",
			State:         "CA",
			Location:      "LA",
			VendorName:    "Globex Inc",
			ApproverEmpID: "A002",
			BillingRuleID: "BR2",
			DOB:           datePtr(1988, 8, 20),
			DOJ:           date(2023, 2, 1),
		},
	}

	designationByEmp := map[string][2]string{
		"E001": {"Engineer", "Acme Corp"},
		"E002": {"Analyst", "Globex Inc"},
	}

	for _, e := range employees {
		var count int64
		if err := tx.WithContext(ctx).Model(&employeedomain.Employee{}).Where("emp_id = ?", e.EmpID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if ref, ok := designationByEmp[e.EmpID]; ok {
			var designation designationdomain.Designation
			err := tx.WithContext(ctx).
				Where("title = ? AND vendor_name = ?", ref[0], ref[1]).
				First(&designation).Error
			if err == nil {
				e.DesignationID = designation.ID
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		e.ID = node.Generate()
		if err := tx.WithContext(ctx).Create(&e).Error; err != nil {
			return err
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}
