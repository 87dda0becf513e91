package match

import (
	"strings"

	"github.com/Nomadcxx/sourcesift/internal/source"
)

// MovieMatch decides whether a release title is the movie described by
// the metadata. The metadata year must literally appear in the original
// (un-cleaned) release title — same-name movies from different years are
// common enough that anything looser cross-matches. Releases that look
// like TV seasons or single episodes are rejected, then the movie title
// is tried in all three apostrophe spellings since uploaders are split on
// how to write possessives.
func MovieMatch(originalReleaseTitle, releaseTitle, movieTitle string, info SimpleInfo) bool {
	if info.Year == "" {
		return false
	}
	if originalReleaseTitle != "" && !strings.Contains(originalReleaseTitle, info.Year) {
		return false
	}

	title := source.Clean(movieTitle, source.ApostropheDefault)
	releaseTitle = source.Clean(releaseTitle, source.ApostropheDefault)

	if strings.Contains(releaseTitle, "season") && !strings.Contains(title, "season") {
		return false
	}
	if HasEpisodeMarker(releaseTitle) {
		return false
	}

	titleStripped := source.Clean(movieTitle, source.ApostropheStrip)
	titleSpaced := source.Clean(movieTitle, source.ApostropheSpace)

	return TitleStartsWith([]string{title}, releaseTitle, info) ||
		TitleStartsWith([]string{titleStripped}, releaseTitle, info) ||
		TitleStartsWith([]string{titleSpaced}, releaseTitle, info)
}
