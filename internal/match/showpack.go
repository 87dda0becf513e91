package match

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Nomadcxx/sourcesift/internal/source"
)

// ShowPackFilter matches release titles bundling multiple or all seasons
// of a show. The suffix vocabulary is an exhaustive enumeration of the
// phrasings observed in the wild: "all N seasons", season ranges in every
// padding and connective variant, and generic markers like "boxset" or
// "complete".
type ShowPackFilter struct {
	pattern         *regexp.Regexp
	completePattern *regexp.Regexp
}

// NewShowPackFilter builds a show-pack filter from show metadata. It
// needs the requested season and the show's total season count to accept
// only packs that actually contain the requested season.
func NewShowPackFilter(info SimpleInfo) (*ShowPackFilter, error) {
	if err := requireFields("show pack", map[string]string{
		"show_title":    info.ShowTitle,
		"season_number": info.SeasonNumber,
		"no_seasons":    info.SeasonCount,
	}); err != nil {
		return nil, err
	}

	seasonCount, err := strconv.Atoi(info.SeasonCount)
	if err != nil {
		return nil, &FilterError{Filter: "show pack", Missing: []string{"numeric no_seasons"}}
	}
	seasonNumber, err := strconv.Atoi(info.SeasonNumber)
	if err != nil {
		return nil, &FilterError{Filter: "show pack", Missing: []string{"numeric season_number"}}
	}

	titles := append([]string{info.ShowTitle}, info.ShowAliases...)
	cleanTitles := make([]string, 0, len(titles))
	for _, title := range titles {
		cleanTitles = append(cleanTitles, CleanWithInfo(title, info))
	}

	suffixes := packNames(info.ShowTitle, info.SeasonNumber, info.SeasonCount, seasonCount)
	for s := seasonNumber; s <= seasonCount; s++ {
		suffixes = append(suffixes, packRangeNames(strconv.Itoa(s))...)
	}

	pattern, err := buildPackPattern(cleanTitles, suffixes, nil)
	if err != nil {
		return nil, &FilterError{Filter: "show pack", Missing: []string{"valid show_title"}}
	}

	// "complete" is matched separately so that "season complete" titles,
	// which describe one season rather than the whole show, stay out.
	completePattern, err := buildPackPattern(cleanTitles, nil, []string{"complete"})
	if err != nil {
		return nil, &FilterError{Filter: "show pack", Missing: []string{"valid show_title"}}
	}

	return &ShowPackFilter{pattern: pattern, completePattern: completePattern}, nil
}

// seasonRanges enumerates cumulative season listings ("1 2 3 ", "1 2 and
// 3") up to the show's season count, keeping only the ones that include
// the requested season.
func seasonRanges(season string, seasonCount int) []string {
	var ranges []string
	allSeasons := "1 "
	for s := 2; s <= seasonCount; s++ {
		ranges = append(ranges, allSeasons+"and "+strconv.Itoa(s))
		allSeasons += strconv.Itoa(s) + " "
		ranges = append(ranges, allSeasons)
	}

	kept := ranges[:0]
	for _, r := range ranges {
		if strings.Contains(r, season) {
			kept = append(kept, r)
		}
	}
	return kept
}

// packNames builds the suffix phrases describing a full-show pack. The
// generic markers are only added when the show title itself doesn't
// contain the word, so shows literally named "Series" or "Collection"
// don't match everything.
func packNames(showTitle, season, countStr string, count int) []string {
	countFill := zfill(countStr, 2)
	countMinusOne := strconv.Itoa(count - 1)
	countMinusOneFill := zfill(countMinusOne, 2)

	names := []string{
		"all " + countStr + " seasons",
		"all " + countFill + " seasons",
		"all " + countMinusOne + " seasons",
		"all " + countMinusOneFill + " seasons",
		"all of serie " + countStr + " seasons",
		"all of serie " + countFill + " seasons",
		"all of serie " + countMinusOne + " seasons",
		"all of serie " + countMinusOneFill + " seasons",
		"all torrent of serie " + countStr + " seasons",
		"all torrent of serie " + countFill + " seasons",
		"all torrent of serie " + countMinusOne + " seasons",
		"all torrent of serie " + countMinusOneFill + " seasons",
	}

	for _, r := range seasonRanges(season, count) {
		names = append(names, r, "season "+r, "seasons "+r)
	}

	lowerTitle := strings.ToLower(showTitle)
	for _, marker := range []string{"series", "boxset", "collection"} {
		if !strings.Contains(lowerTitle, marker) {
			names = append(names, marker)
		}
	}

	return names
}

// packRangeNames enumerates the "season 1 to N" style phrasings for a
// pack ending at lastSeason, in plain, padded, "to" and "thru" variants.
func packRangeNames(lastSeason string) []string {
	fill := zfill(lastSeason, 2)

	return []string{
		lastSeason + " seasons",
		fill + " seasons",
		"season 1 " + lastSeason,
		"season 01 " + fill,
		"season1 " + lastSeason,
		"season01 " + fill,
		"season 1 to " + lastSeason,
		"season 01 to " + fill,
		"season 1 thru " + lastSeason,
		"season 01 thru " + fill,
		"seasons 1 " + lastSeason,
		"seasons 01 " + fill,
		"seasons1 " + lastSeason,
		"seasons01 " + fill,
		"seasons 1 to " + lastSeason,
		"seasons 01 to " + fill,
		"seasons 1 thru " + lastSeason,
		"seasons 01 thru " + fill,
		"full season 1 " + lastSeason,
		"full season 01 " + fill,
		"full season1 " + lastSeason,
		"full season01 " + fill,
		"full season 1 to " + lastSeason,
		"full season 01 to " + fill,
		"full season 1 thru " + lastSeason,
		"full season 01 thru " + fill,
		"full seasons 1 " + lastSeason,
		"full seasons 01 " + fill,
		"full seasons1 " + lastSeason,
		"full seasons01 " + fill,
		"full seasons 1 to " + lastSeason,
		"full seasons 01 to " + fill,
		"full seasons 1 thru " + lastSeason,
		"full seasons 01 thru " + fill,
		"s1 " + lastSeason,
		"s1 s" + lastSeason,
		"s01 " + fill,
		"s01 s" + fill,
		"s1 to " + lastSeason,
		"s1 to s" + lastSeason,
		"s01 to " + fill,
		"s01 to s" + fill,
		"s1 thru " + lastSeason,
		"s1 thru s" + lastSeason,
		"s01 thru " + fill,
		"s01 thru s" + fill,
	}
}

// Match reports whether the release title is a pack containing this
// filter's season.
func (f *ShowPackFilter) Match(releaseTitle string) bool {
	if HasEpisodeMarker(releaseTitle) {
		return false
	}

	title := source.Clean(releaseTitle, source.ApostropheDefault)
	if f.pattern.MatchString(title) {
		return true
	}
	if !strings.Contains(title, "season complete") && f.completePattern.MatchString(title) {
		return true
	}
	return false
}
