package wareki

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Normalize folds user-typed input toward a canonical era code: full-width
// forms such as "Ｈ３１" become ASCII, surrounding white space (including the
// ideographic space) is trimmed and letters are upper-cased.
//
// ToGregorianYear never normalizes on its own; callers that accept free-form
// input run Normalize first.
func Normalize(code string) string {
	s := strings.TrimSpace(width.Narrow.String(code))
	// A Caser keeps state, so each call gets its own.
	return cases.Upper(language.Und).String(s)
}
