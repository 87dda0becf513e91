package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Nomadcxx/sourcesift/internal/source"
)

// EpisodeFilter matches release titles naming one specific episode of a
// show. It holds the patterns compiled from a metadata snapshot at build
// time; Match is pure and safe for concurrent use across many titles.
type EpisodeFilter struct {
	pattern     *regexp.Regexp
	cleanTitles []string
	info        SimpleInfo
}

// NewEpisodeFilter builds an episode filter from show metadata. The
// pattern requires a cleaned title to start with one of the show's name
// variants, optionally the year, then a season/episode token in one of
// the spellings uploaders use (s01e02, season 1 episode 2, multi-episode
// suffixes like e02e03).
func NewEpisodeFilter(info SimpleInfo) (*EpisodeFilter, error) {
	if err := requireFields("episode", map[string]string{
		"show_title":     info.ShowTitle,
		"season_number":  info.SeasonNumber,
		"episode_number": info.EpisodeNumber,
	}); err != nil {
		return nil, err
	}

	titles := append([]string{info.ShowTitle}, info.ShowAliases...)

	cleanTitles := make([]string, 0, len(titles))
	escapedTitles := make([]string, 0, len(titles))
	for _, title := range titles {
		clean := CleanWithInfo(title, info)
		cleanTitles = append(cleanTitles, clean)
		escapedTitles = append(escapedTitles, regexp.QuoteMeta(clean))
	}

	pattern := fmt.Sprintf(
		`^(?:%s)+ ?(?:%s)? ?(?:s0?%se0?%s(?: |e\d\d?)|season 0?%s episode 0?%s)+`,
		strings.Join(escapedTitles, " ?|"),
		regexp.QuoteMeta(info.Year),
		regexp.QuoteMeta(info.SeasonNumber),
		regexp.QuoteMeta(info.EpisodeNumber),
		regexp.QuoteMeta(info.SeasonNumber),
		regexp.QuoteMeta(info.EpisodeNumber),
	)

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &FilterError{Filter: "episode", Missing: []string{"valid show_title"}}
	}

	return &EpisodeFilter{pattern: re, cleanTitles: cleanTitles, info: info}, nil
}

// Match reports whether the release title names this filter's episode.
// When the strict pattern misses, the loose episode-title check runs as a
// fallback for releases named after the episode instead of its number.
func (f *EpisodeFilter) Match(releaseTitle string) bool {
	title := source.Clean(releaseTitle, source.ApostropheDefault)
	if f.pattern.MatchString(title) {
		return true
	}
	return EpisodeTitleMatch(f.cleanTitles, title, f.info)
}
