package db

import (
	"strings"

	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/shared/query"
)

// Paginate applies LIMIT/OFFSET from a page filter.
func Paginate(f query.PageFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(f.Limit()).Offset(f.Offset())
	}
}

// LikeAny matches pattern against any of columns. pattern must come from query.Contains.
//
//	db.Scopes(LikeAny(query.Contains(term), "p.payer_name", "p.payer_code"))
func LikeAny(pattern string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(columns) == 0 {
			return db
		}
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = col + " LIKE ? ESCAPE '" + query.LikeEscape + "'"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// IsSQLite reports whether db talks to SQLite (the test driver).
func IsSQLite(db *gorm.DB) bool {
	return db.Dialector != nil && db.Dialector.Name() == "sqlite"
}

// GroupConcatDistinct renders a dialect-specific distinct string aggregate
// joining values with separator. separator must not occur in the values.
// Value order is only defined on MySQL.
func GroupConcatDistinct(db *gorm.DB, column, separator string) string {
	sep := "'" + strings.ReplaceAll(separator, "'", "''") + "'"
	if IsSQLite(db) {
		// SQLite rejects a separator argument on DISTINCT aggregates. Each value
		// is suffixed with separator and the default "," glue is folded into it.
		return "RTRIM(REPLACE(GROUP_CONCAT(DISTINCT " + column + " || " + sep + "), " +
			sep + " || ',', " + sep + "), " + sep + ")"
	}
	return "GROUP_CONCAT(DISTINCT " + column + " ORDER BY " + column + " SEPARATOR " + sep + ")"
}
