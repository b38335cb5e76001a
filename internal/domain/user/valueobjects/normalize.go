package valueobjects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// NormalizeIdentifier trims and lower-cases a username or email so lookups
// and uniqueness checks are case-insensitive.
func NormalizeIdentifier(s string) string {
	return lowerCaser.String(strings.TrimSpace(s))
}
