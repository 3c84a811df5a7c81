package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	approverdomain "github.com/fieldhr/rollcall/internal/approver/domain"
	attendancedomain "github.com/fieldhr/rollcall/internal/attendance/domain"
	billingruledomain "github.com/fieldhr/rollcall/internal/billingrule/domain"
	designationdomain "github.com/fieldhr/rollcall/internal/designation/domain"
	employeedomain "github.com/fieldhr/rollcall/internal/employee/domain"
	locationdomain "github.com/fieldhr/rollcall/internal/location/domain"
	vendordomain "github.com/fieldhr/rollcall/internal/vendors/domain"
)

// RunMigrations applies the embedded SQL migrations against postgres.
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}

// AutoMigrate builds the schema from the gorm models. Used for mysql and
// sqlite, where the embedded migrations do not apply.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&vendordomain.Vendor{},
		&locationdomain.Location{},
		&approverdomain.Approver{},
		&designationdomain.Designation{},
		&billingruledomain.BillingCycleRule{},
		&employeedomain.Employee{},
		&attendancedomain.MonthlyAttendance{},
	)
}
