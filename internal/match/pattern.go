package match

import (
	"regexp"
	"strings"
)

// buildPackPattern compiles the anchored alternation used by the pack
// filters: one or more show-title variants followed by one or more
// qualifying suffixes. Titles and suffixes are escaped; rawSuffixes are
// spliced in as-is for suffixes that are themselves patterns.
func buildPackPattern(titles, suffixes, rawSuffixes []string) (*regexp.Regexp, error) {
	var titleAlts []string
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title != "" {
			titleAlts = append(titleAlts, regexp.QuoteMeta(title)+" ")
		}
	}

	var suffixAlts []string
	for _, suffix := range suffixes {
		suffix = strings.TrimSpace(suffix)
		if suffix != "" {
			suffixAlts = append(suffixAlts, regexp.QuoteMeta(suffix))
		}
	}
	suffixAlts = append(suffixAlts, rawSuffixes...)

	pattern := "^(?:" + strings.Join(titleAlts, "|") + ")+(?:" + strings.Join(suffixAlts, "|") + ")+"
	return regexp.Compile(pattern)
}

// zfill left-pads a numeric string with zeros to the given width
func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
