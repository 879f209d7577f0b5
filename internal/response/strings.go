// Package response normalizes raw upstream records into the display view
// models in internal/domain. Each adapter is constructed with a New* from a
// possibly-nil record and never panics; Format substitutes the shared
// domain.Unavailable placeholder for anything the upstream omitted, so the
// rendering layer needs no nil-checks.
package response

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// titleCase renders "MICKY MOUSE" as "Micky Mouse".
func titleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// sentenceCase renders "BODY REPAIR" as "Body repair" — only the first word
// keeps a capital, which is how locations are displayed.
func sentenceCase(s string) string {
	lower := strings.ToLower(s)
	r := []rune(lower)
	if len(r) == 0 {
		return lower
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// fullNameOr joins the title-cased name parts, or returns fallback when both
// are absent.
func fullNameOr(fallback, firstName, lastName string) string {
	name := strings.TrimSpace(titleCase(strings.TrimSpace(firstName + " " + lastName)))
	if name == "" {
		return fallback
	}
	return name
}
