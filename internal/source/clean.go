// Package source normalizes and classifies release titles as published
// by uploaders: noisy, punctuation-heavy strings carrying encoded quality
// and codec metadata.
package source

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ApostropheMode controls how possessive apostrophes are resolved during
// cleaning. Uploaders spell "Bob's" as "bobs", "bob s" or "bob", so the
// matcher builds one cleaned variant per mode.
type ApostropheMode int

const (
	// ApostropheDefault replaces "'s" with a bare "s" ("bob's" -> "bobs")
	ApostropheDefault ApostropheMode = iota
	// ApostropheStrip removes "'s" entirely ("bob's" -> "bob")
	ApostropheStrip
	// ApostropheSpace replaces "'s" with " s" ("bob's" -> "bob s")
	ApostropheSpace
)

// Pre-compiled regexes for title cleaning
var (
	apostropheRegex  = regexp.MustCompile(`\\'s|'s|&#039;s| 039 s`)
	singleQuoteRegex = regexp.MustCompile("['`]")
	separatorRegex   = regexp.MustCompile(`[:|/,!?()"\[\]\-\\_.{}]`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	ampersandRegex   = regexp.MustCompile(`&#038;|&amp;|&`)
)

// deaccenter strips combining marks after canonical decomposition, so
// accented characters fold to their base Latin form ("Amélie" -> "Amelie")
var deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Deaccent folds accented characters to their unaccented base form.
// Characters with no Latin base survive here and are dropped later by
// StripNonPrintable.
func Deaccent(s string) string {
	out, _, err := transform.String(deaccenter, s)
	if err != nil {
		return s
	}
	return out
}

// StripNonPrintable removes every character outside the printable ASCII
// set (space through tilde, plus common whitespace controls).
func StripNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x20 && r <= 0x7e {
			return r
		}
		switch r {
		case '\t', '\n', '\r', '\v', '\f':
			return r
		}
		return -1
	}, s)
}

// Clean returns a normalized version of a release title: deaccented,
// printable-ASCII only, lowercased, apostrophes resolved per mode, quotes
// removed, separators collapsed to single spaces and ampersands spelled
// out as "and". Cleaning an already-clean title returns it unchanged,
// with one known edge: a title-leading "dd+" has no preceding separator
// for the look-back check, so its plus survives a first clean only and
// is dropped on the next pass.
//
// Clean is a pure function and safe for concurrent use.
func Clean(title string, mode ApostropheMode) string {
	title = Deaccent(title)
	title = StripNonPrintable(title)
	title = strings.ToLower(title)

	replacement := "s"
	switch mode {
	case ApostropheStrip:
		replacement = ""
	case ApostropheSpace:
		replacement = " s"
	}

	title = apostropheRegex.ReplaceAllString(title, replacement)
	title = singleQuoteRegex.ReplaceAllString(title, "")
	title = replacePlus(title)
	title = separatorRegex.ReplaceAllString(title, " ")
	title = whitespaceRegex.ReplaceAllString(title, " ")
	title = ampersandRegex.ReplaceAllString(title, "and")

	return strings.TrimSpace(title)
}

// isSeparatorOrSpace reports whether b belongs to the separator class
// replacePlus uses for its look-back check.
func isSeparatorOrSpace(b byte) bool {
	switch b {
	case ':', '|', '/', ',', '!', '?', '(', ')', '"', '[', ']', '-', '\\', '_', '.', '{', '}',
		' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// replacePlus replaces '+' characters with spaces unless the plus closes
// a "dd+" audio token (separator, then "dd", then '+'), which must
// survive cleaning so DD+ detection keeps working.
func replacePlus(s string) string {
	if !strings.ContainsRune(s, '+') {
		return s
	}

	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] != '+' {
			continue
		}
		if i >= 3 && isSeparatorOrSpace(b[i-3]) && b[i-2] == 'd' && b[i-1] == 'd' {
			continue
		}
		b[i] = ' '
	}
	return string(b)
}
