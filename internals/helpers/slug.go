package helper

import (
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// GenerateSlug normalizes a string into a slug:
// - lower-case
// - spaces & non-alnum become "-"
// - multiple "-" collapse into one
// - "-" trimmed at both ends
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if len(out) > DefaultSlugMaxLen {
		out = strings.Trim(out[:DefaultSlugMaxLen], "-")
	}
	return out
}

// EnsureUniqueSlug appends -2, -3, ... until the slug is free in table.column.
// Soft-deleted rows (deletedColumn IS NOT NULL) do not block reuse.
func EnsureUniqueSlug(db *gorm.DB, base, table, column, deletedColumn string) (string, error) {
	slug := GenerateSlug(base)
	if slug == "" {
		slug = "item"
	}

	candidate := slug
	for i := 2; ; i++ {
		var count int64
		err := db.Table(table).
			Where(fmt.Sprintf("%s = ? AND %s IS NULL", column, deletedColumn), candidate).
			Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}
