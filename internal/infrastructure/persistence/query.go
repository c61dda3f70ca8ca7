package persistence

import (
	"strings"

	"github.com/dashboard/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a LIKE pattern matching any value containing text.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// searchColumn is one operand of a free-text search.
type searchColumn struct {
	expr          string
	caseSensitive bool
}

// textColumn matches expr case-insensitively.
func textColumn(expr string) searchColumn {
	return searchColumn{expr: expr}
}

// castColumn matches the textual rendering of a numeric expr, so "25"
// finds 250 and 1250.
func castColumn(expr string) searchColumn {
	return searchColumn{expr: "CAST(" + expr + " AS TEXT)", caseSensitive: true}
}

// matchAny restricts the query to rows where any column contains search.
// An empty search leaves the query unfiltered.
func matchAny(search string, columns ...searchColumn) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" || len(columns) == 0 {
			return db
		}

		pattern := containsPattern(search)
		conds := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, col := range columns {
			if col.caseSensitive {
				conds = append(conds, col.expr+` LIKE ? ESCAPE '\'`)
			} else {
				conds = append(conds, "LOWER("+col.expr+`) LIKE LOWER(?) ESCAPE '\'`)
			}
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// paginate applies OFFSET/LIMIT for q. It must be the last scope so that it
// applies after ordering and grouping.
func paginate(q shared.ListQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.PageSize <= 0 {
			return db
		}
		return db.Offset(q.Offset()).Limit(q.PageSize)
	}
}
