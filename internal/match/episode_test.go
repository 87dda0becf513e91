package match

import (
	"errors"
	"testing"
)

func TestEpisodeFilter(t *testing.T) {
	info := SimpleInfo{
		ShowTitle:     "Breaking Bad",
		ShowAliases:   []string{"BrBa"},
		SeasonNumber:  "1",
		EpisodeNumber: "5",
		Year:          "2008",
	}

	filter, err := NewEpisodeFilter(info)
	if err != nil {
		t.Fatalf("NewEpisodeFilter() error = %v", err)
	}

	tests := []struct {
		input    string
		expected bool
	}{
		{"Breaking.Bad.S01E05.720p.HDTV.x264", true},
		{"Breaking.Bad.2008.S01E05.1080p.WEB-DL", true},
		{"Breaking.Bad.S1E5.720p", true},
		{"Breaking.Bad.S01E05E06.720p", true},
		{"Breaking.Bad.Season.1.Episode.5.HDTV", true},
		{"BrBa.S01E05.720p", true},
		{"Breaking.Bad.S01E06.720p", false},
		{"Breaking.Bad.S02E05.720p", false},
		{"Breaking.Bad.S01.Complete.720p", false},
		{"Better.Call.Saul.S01E05.720p", false},
	}

	for _, tt := range tests {
		result := filter.Match(tt.input)
		if result != tt.expected {
			t.Errorf("Match(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestEpisodeFilterTitleFallback(t *testing.T) {
	info := SimpleInfo{
		ShowTitle:     "Breaking Bad",
		SeasonNumber:  "1",
		EpisodeNumber: "5",
		EpisodeTitle:  "Face Off Part Two",
	}

	filter, err := NewEpisodeFilter(info)
	if err != nil {
		t.Fatalf("NewEpisodeFilter() error = %v", err)
	}

	// no season/episode token, but the release is named after the episode
	if !filter.Match("Breaking.Bad.Face.Off.Part.Two.720p") {
		t.Error("Match with episode title name = false, want true")
	}
	if filter.Match("Other.Show.Face.Off.Part.Two.720p") {
		t.Error("Match with wrong show = true, want false")
	}
}

func TestNewEpisodeFilterMissingFields(t *testing.T) {
	_, err := NewEpisodeFilter(SimpleInfo{ShowTitle: "Breaking Bad"})
	if err == nil {
		t.Fatal("NewEpisodeFilter() error = nil, want FilterError")
	}

	var filterErr *FilterError
	if !errors.As(err, &filterErr) {
		t.Fatalf("error type = %T, want *FilterError", err)
	}
	if len(filterErr.Missing) != 2 {
		t.Errorf("Missing = %v, want [episode_number season_number]", filterErr.Missing)
	}
}
