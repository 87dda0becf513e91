package main

import (
	"testing"

	"github.com/Nomadcxx/sourcesift/internal/match"
	"github.com/Nomadcxx/sourcesift/internal/source"
)

func TestFilterQuery(t *testing.T) {
	info := match.SimpleInfo{
		ShowTitle:     "breaking bad",
		SeasonNumber:  "1",
		EpisodeNumber: "5",
		SeasonCount:   "5",
	}

	tests := []struct {
		kind     string
		expected string
	}{
		{"episode", "Breaking Bad S1E5"},
		{"season", "Breaking Bad season 1"},
		{"pack", "Breaking Bad (5 seasons)"},
		{"", "Breaking Bad"},
	}

	for _, tt := range tests {
		result := filterQuery(tt.kind, info)
		if result != tt.expected {
			t.Errorf("filterQuery(%q) = %q, want %q", tt.kind, result, tt.expected)
		}
	}
}

// Scraper metadata arrives in arbitrary casing; the query normalizes it
// through the clean/display pipeline.
func TestFilterQueryDirtyTitle(t *testing.T) {
	info := match.SimpleInfo{ShowTitle: "BOB'S BURGERS", SeasonNumber: "2", EpisodeNumber: "3"}

	if got := filterQuery("episode", info); got != "Bobs Burgers S2E3" {
		t.Errorf("filterQuery(episode) = %q, want %q", got, "Bobs Burgers S2E3")
	}
}

func TestParseApostropheMode(t *testing.T) {
	tests := []struct {
		name     string
		expected source.ApostropheMode
		wantErr  bool
	}{
		{"default", source.ApostropheDefault, false},
		{"strip", source.ApostropheStrip, false},
		{"space", source.ApostropheSpace, false},
		{"bogus", source.ApostropheDefault, true},
	}

	for _, tt := range tests {
		mode, err := parseApostropheMode(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseApostropheMode(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if mode != tt.expected {
			t.Errorf("parseApostropheMode(%q) = %v, want %v", tt.name, mode, tt.expected)
		}
	}
}
