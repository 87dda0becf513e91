package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Nomadcxx/sourcesift/internal/source"
)

// episodeMetaRegex builds the loose pattern used to rank files inside a
// pack against one episode's metadata. Every component except the
// season/episode token is optional, so partial matches still score; the
// scoring in BestEpisodeIndex rewards the file matching the most of
// them. An asterisk in show metadata acts as a single-character
// wildcard.
func episodeMetaRegex(info SimpleInfo) (*regexp.Regexp, error) {
	showTitle := source.Clean(info.ShowTitle, source.ApostropheDefault)
	country := strings.ToLower(strings.Join(info.Country, "|"))
	episodeTitle := source.Clean(info.EpisodeTitle, source.ApostropheDefault)

	if episodeTitle == showTitle || digitsOnlyRegex.MatchString(episodeTitle) {
		episodeTitle = ""
	}

	pattern := fmt.Sprintf(
		`(?:%s)? ?(?:%s)? ?(?:%s)? ?(?:(?:[s[]?)0?%s[x .e]|(?:season 0?%s (?:episode )|(?: ep ?)))(?:\d?\d?e)?0?%s(?:e\d\d)?\]? `,
		showTitle, country, info.Year, info.SeasonNumber, info.SeasonNumber, info.EpisodeNumber,
	)
	if episodeTitle != "" {
		pattern += "|" + episodeTitle
	}
	pattern = strings.ReplaceAll(pattern, "*", ".")

	return regexp.Compile(pattern)
}

// BestEpisodeIndex picks the file from names that best matches the
// episode described by info. Each name is reduced to its cleaned
// basename and scored by how much of it the metadata pattern covers; the
// highest score wins, with the earliest name breaking ties. The second
// return is false when no name matches at all.
func BestEpisodeIndex(names []string, info SimpleInfo) (int, bool) {
	pattern, err := episodeMetaRegex(info)
	if err != nil {
		return -1, false
	}

	bestIndex := -1
	bestScore := 0
	for i, name := range names {
		base := name
		if idx := strings.LastIndex(base, "/"); idx >= 0 {
			base = base[idx+1:]
		}
		base = strings.ToLower(strings.ReplaceAll(base, "&", " "))
		title := source.Clean(base, source.ApostropheDefault)

		matches := pattern.FindAllString(title, -1)
		if len(matches) == 0 {
			continue
		}
		score := len(strings.Join(matches, " "))
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}

	if bestIndex < 0 {
		return -1, false
	}
	return bestIndex, true
}
