package match

import (
	"strings"

	"github.com/Nomadcxx/sourcesift/internal/source"
)

// extrasMarkers name the folder and file conventions packs use for bonus
// material that should never be resolved as the requested item.
var extrasMarkers = []string{"extras", "specials", "featurettes", "deleted scenes", "sample"}

// PlaybackMeta carries the item names that decide whether an extras
// marker is safe to filter on. A show or episode whose own title contains
// a marker word would otherwise filter itself out.
type PlaybackMeta struct {
	Title        string
	ShowTitle    string
	SeasonNumber string
}

// FilterExtras drops pack file paths that point at bonus material rather
// than the requested item. Season 0 is the specials season, so for it the
// paths are returned untouched. A marker that appears in the item's own
// title is skipped rather than applied.
func FilterExtras(paths []string, meta PlaybackMeta) []string {
	if meta.SeasonNumber == "0" {
		return paths
	}

	title := strings.ToLower(meta.Title)
	showTitle := strings.ToLower(meta.ShowTitle)
	for _, marker := range extrasMarkers {
		if strings.Contains(title, marker) || strings.Contains(showTitle, marker) {
			continue
		}
		paths = dropByMarker(paths, marker)
	}
	return paths
}

func dropByMarker(paths []string, marker string) []string {
	kept := paths[:0:0]
	for _, path := range paths {
		if pathHasMarker(path, marker) {
			continue
		}
		kept = append(kept, path)
	}
	return kept
}

// pathHasMarker checks the cleaned basename, every path component, and
// the raw path for the marker.
func pathHasMarker(path, marker string) bool {
	base := path
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.ToLower(strings.ReplaceAll(base, "&", " "))
	if strings.Contains(source.Clean(base, source.ApostropheDefault), marker) {
		return true
	}

	for _, folder := range strings.Split(path, "/") {
		if strings.EqualFold(folder, marker) {
			return true
		}
	}

	return strings.Contains(path, marker)
}
