package match

import (
	"regexp"

	"github.com/Nomadcxx/sourcesift/internal/source"
)

// SeasonPackFilter matches release titles bundling one whole season of a
// show. Titles that also carry a single-episode marker are rejected
// outright: a real season pack never names one episode.
type SeasonPackFilter struct {
	pattern *regexp.Regexp
}

// NewSeasonPackFilter builds a season-pack filter from show metadata.
// The pattern alternates the show's name variants with the season-number
// spellings uploaders use: s5, s05, season 5, season 05.
func NewSeasonPackFilter(info SimpleInfo) (*SeasonPackFilter, error) {
	if err := requireFields("season pack", map[string]string{
		"show_title":    info.ShowTitle,
		"season_number": info.SeasonNumber,
	}); err != nil {
		return nil, err
	}

	titles := append([]string{info.ShowTitle}, info.ShowAliases...)
	cleanTitles := make([]string, 0, len(titles))
	for _, title := range titles {
		cleanTitles = append(cleanTitles, CleanWithInfo(title, info))
	}

	season := info.SeasonNumber
	seasonFill := zfill(season, 2)
	suffixes := []string{
		"s" + season,
		"s" + seasonFill,
		"season " + season,
		"season " + seasonFill,
	}

	pattern, err := buildPackPattern(cleanTitles, suffixes, nil)
	if err != nil {
		return nil, &FilterError{Filter: "season pack", Missing: []string{"valid show_title"}}
	}

	return &SeasonPackFilter{pattern: pattern}, nil
}

// Match reports whether the release title is a pack of this filter's
// season.
func (f *SeasonPackFilter) Match(releaseTitle string) bool {
	if HasEpisodeMarker(releaseTitle) {
		return false
	}
	title := source.Clean(releaseTitle, source.ApostropheDefault)
	return f.pattern.MatchString(title)
}
