package mapper

import (
	"strings"
	"unicode"
)

// ToSnake converts a lowerCamel field name to its snake_case column name:
// "firstRespondedAt" -> "first_responded_at". Each upper-case rune starts a
// new word, so the mapping is the exact inverse of ToCamel for names with no
// consecutive capitals.
func ToSnake(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamel converts a snake_case column name to lowerCamel:
// "assignee_user_id" -> "assigneeUserId".
func ToCamel(column string) string {
	var b strings.Builder
	b.Grow(len(column))
	upperNext := false
	for _, r := range column {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ColumnsFor maps API field names to their columns, preserving order.
func ColumnsFor(fields []string) []string {
	return MapSlice(fields, ToSnake)
}
