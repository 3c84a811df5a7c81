package option

import (
	"github.com/fieldhr/rollcall/pkg/db/pagination"
	"gorm.io/gorm"
)

// QueryOption mutates a gorm statement before execution.
type QueryOption interface {
	Apply(*gorm.DB) *gorm.DB
}

type optionFunc func(*gorm.DB) *gorm.DB

func (f optionFunc) Apply(db *gorm.DB) *gorm.DB {
	return f(db)
}

func WithLimit(limit int) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Limit(limit)
	})
}

func WithOrder(order string) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		if order == "" {
			return db
		}
		return db.Order(order)
	})
}

// ApplyPagination resolves a cursor token into a keyset condition and fetches
// limit+1 rows so callers can detect whether more pages exist.
func ApplyPagination(page pagination.Pagination) QueryOption {
	return ApplyPaginationKeyed(page, "id")
}

// ApplyPaginationKeyed is ApplyPagination with an explicit key column, for
// joined queries where a bare "id" would be ambiguous.
func ApplyPaginationKeyed(page pagination.Pagination, keyColumn string) QueryOption {
	return optionFunc(func(db *gorm.DB) *gorm.DB {
		limit := page.PageSize
		if limit <= 0 {
			limit = 10
		}

		if page.PageToken != "" {
			cursor, err := pagination.DecodeCursor(page.PageToken)
			if err == nil && cursor != nil && cursor.ID != "" {
				db = db.Where(keyColumn+" < ?", cursor.ID)
			}
		}

		return db.Limit(limit + 1)
	})
}
