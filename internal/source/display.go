package source

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ordinalRegex matches ordinal numbers (1st, 2nd, 25th) whose suffix
// must stay lowercase through title casing
var ordinalRegex = regexp.MustCompile(`(?i)\b(\d+)(st|nd|rd|th)\b`)

var titleCaser = cases.Title(language.English)

// DisplayTitle renders a cleaned title for human display: title-cased
// with ordinal suffixes kept lowercase ("25th anniversary edition" ->
// "25th Anniversary Edition").
func DisplayTitle(cleanTitle string) string {
	s := titleCaser.String(cleanTitle)

	return ordinalRegex.ReplaceAllStringFunc(s, func(m string) string {
		parts := ordinalRegex.FindStringSubmatch(m)
		return parts[1] + strings.ToLower(parts[2])
	})
}
