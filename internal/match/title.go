package match

import (
	"regexp"
	"strings"

	"github.com/Nomadcxx/sourcesift/internal/source"
)

// Pre-compiled regexes for title matching
var (
	// episodeMarkerRegex matches a season+episode token in a cleaned title
	// with a trailing space appended: s01e02, season 1 episode 2, 1 x 2
	episodeMarkerRegex = regexp.MustCompile(`(?:s\d+ ?e\d+ )|(?:season ?\d+ ?(?:episode|ep) ?\d+)|(?: \d+ ?x ?\d+ )`)
	whitespaceRegex    = regexp.MustCompile(`\s+`)
	digitsOnlyRegex    = regexp.MustCompile(`^\d+$`)
)

// HasEpisodeMarker reports whether a release title carries a season plus
// episode token. Season and show packs use it as a rejection rule: a pack
// that also names a single episode is not a pack.
func HasEpisodeMarker(releaseTitle string) bool {
	title := source.Clean(releaseTitle, source.ApostropheDefault) + " "
	return episodeMarkerRegex.MatchString(title)
}

// removeFromTitle strips a target token from a title in its common
// separator framings, then optionally re-cleans. The result always ends
// with a single trailing space so prefix checks compose.
func removeFromTitle(title, target string, clean bool) string {
	if target == "" {
		return title
	}

	t := strings.ToLower(target)
	title = strings.ReplaceAll(title, " "+t+" ", " ")
	title = strings.ReplaceAll(title, "."+t+".", " ")
	title = strings.ReplaceAll(title, "+"+t+"+", " ")
	title = strings.ReplaceAll(title, "-"+t+"-", " ")

	if clean {
		title = source.Clean(title, source.ApostropheDefault) + " "
	} else {
		title += " "
	}

	return whitespaceRegex.ReplaceAllString(title, " ")
}

// removeCountry strips country tokens from a lowercased title. GB and UK
// are interchangeable in release names, so either one removes both.
func removeCountry(title string, countries []string, clean bool) string {
	title = strings.ToLower(title)
	for _, country := range countries {
		country = strings.ToLower(country)
		if country == "gb" || country == "uk" {
			title = removeFromTitle(title, "gb", clean)
			title = removeFromTitle(title, "uk", clean)
		} else {
			title = removeFromTitle(title, country, clean)
		}
	}
	return title
}

// CleanWithInfo cleans a title and strips the country and year tokens
// known from metadata, since release names carry them in unpredictable
// positions.
func CleanWithInfo(title string, info SimpleInfo) string {
	t := source.Clean(title, source.ApostropheDefault) + " "
	t = removeCountry(t, info.Country, true)
	t = removeFromTitle(t, info.Year, true)
	t = whitespaceRegex.ReplaceAllString(t, " ")
	return strings.TrimRight(t, " ")
}

// TitleStartsWith cleans and joins the given title parts, strips country
// and year tokens, and reports whether the cleaned release title starts
// with the resulting prefix.
func TitleStartsWith(parts []string, releaseTitle string, info SimpleInfo) bool {
	title := source.Clean(strings.Join(parts, " "), source.ApostropheDefault) + " "
	title = removeCountry(title, info.Country, true)
	title = removeFromTitle(title, info.Year, true)
	return strings.HasPrefix(releaseTitle, title)
}

// EpisodeTitleMatch is the loose fallback for episode filtering: the
// release contains the known episode title (three words or more, shorter
// ones collide too easily) and starts with one of the known show titles.
func EpisodeTitleMatch(showTitles []string, releaseTitle string, info SimpleInfo) bool {
	if info.EpisodeTitle == "" {
		return false
	}

	releaseTitle = source.Clean(releaseTitle, source.ApostropheDefault)
	episodeTitle := source.Clean(info.EpisodeTitle, source.ApostropheDefault)
	if len(strings.Split(episodeTitle, " ")) < 3 || !strings.Contains(releaseTitle, episodeTitle) {
		return false
	}

	for _, title := range showTitles {
		if strings.HasPrefix(releaseTitle, source.Clean(title, source.ApostropheDefault)) {
			return true
		}
	}
	return false
}
