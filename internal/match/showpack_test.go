package match

import (
	"errors"
	"testing"
)

func TestShowPackFilter(t *testing.T) {
	info := SimpleInfo{
		ShowTitle:    "The Wire",
		SeasonNumber: "2",
		SeasonCount:  "5",
	}

	filter, err := NewShowPackFilter(info)
	if err != nil {
		t.Fatalf("NewShowPackFilter() error = %v", err)
	}

	tests := []struct {
		input    string
		expected bool
	}{
		{"The.Wire.Complete.Series.720p.BluRay", true},
		{"The.Wire.All.5.Seasons.1080p", true},
		{"The.Wire.Seasons.1-5.1080p.WEB-DL", true},
		{"The.Wire.Season.1.to.3.720p", true},
		{"The.Wire.S01-S05.COMPLETE", true},
		{"The.Wire.Boxset.1080p", true},
		{"The.Wire.COMPLETE.720p", true},
		// season 1 alone does not contain season 2
		{"The.Wire.Season.1.720p", false},
		// an episode release is never a pack
		{"The.Wire.S01E05.720p", false},
		// "season complete" describes one season, not the show
		{"The.Wire.Season.Complete.720p", false},
		{"Other.Show.Complete.Series.720p", false},
	}

	for _, tt := range tests {
		result := filter.Match(tt.input)
		if result != tt.expected {
			t.Errorf("Match(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestShowPackFilterRangeMustContainSeason(t *testing.T) {
	info := SimpleInfo{
		ShowTitle:    "The Wire",
		SeasonNumber: "5",
		SeasonCount:  "5",
	}

	filter, err := NewShowPackFilter(info)
	if err != nil {
		t.Fatalf("NewShowPackFilter() error = %v", err)
	}

	// a seasons 1-3 pack does not contain season 5
	if filter.Match("The.Wire.Seasons.1-3.720p") {
		t.Error("Match on range without requested season = true, want false")
	}
	if !filter.Match("The.Wire.Seasons.1-5.720p") {
		t.Error("Match on full range = false, want true")
	}
}

func TestShowPackFilterGenericMarkerGuard(t *testing.T) {
	// a show literally titled with a pack marker must not match on the
	// marker alone
	info := SimpleInfo{
		ShowTitle:    "Connected The Series",
		SeasonNumber: "1",
		SeasonCount:  "2",
	}

	filter, err := NewShowPackFilter(info)
	if err != nil {
		t.Fatalf("NewShowPackFilter() error = %v", err)
	}

	if filter.Match("Connected.The.Series.Series.720p") {
		t.Error("Match on series marker for show containing word = true, want false")
	}
	if !filter.Match("Connected.The.Series.Boxset.720p") {
		t.Error("Match on boxset marker = false, want true")
	}
}

func TestNewShowPackFilterErrors(t *testing.T) {
	_, err := NewShowPackFilter(SimpleInfo{ShowTitle: "The Wire", SeasonNumber: "2"})
	if err == nil {
		t.Fatal("NewShowPackFilter() without no_seasons error = nil, want FilterError")
	}

	var filterErr *FilterError
	if !errors.As(err, &filterErr) {
		t.Fatalf("error type = %T, want *FilterError", err)
	}

	_, err = NewShowPackFilter(SimpleInfo{ShowTitle: "The Wire", SeasonNumber: "2", SeasonCount: "five"})
	if err == nil {
		t.Fatal("NewShowPackFilter() with non-numeric no_seasons error = nil, want FilterError")
	}
}
