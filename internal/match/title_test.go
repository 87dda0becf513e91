package match

import (
	"testing"
)

func TestHasEpisodeMarker(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Show.Name.S05E03.1080p.WEB-DL", true},
		{"Show Name s1e2", true},
		{"Show.Name.Season.2.Episode.5.HDTV", true},
		{"Show Name Season 2 Ep 5", true},
		{"Show 1x05 HDTV", true},
		{"Show.Name.S05.Complete.1080p", false},
		{"Show.Name.Season.5.1080p", false},
		{"Movie.2020.1080p.BluRay", false},
	}

	for _, tt := range tests {
		result := HasEpisodeMarker(tt.input)
		if result != tt.expected {
			t.Errorf("HasEpisodeMarker(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestCleanWithInfo(t *testing.T) {
	tests := []struct {
		title    string
		info     SimpleInfo
		expected string
	}{
		{
			"Shameless.US.S05.1080p",
			SimpleInfo{Country: CountryList{"US"}},
			"shameless s05 1080p",
		},
		// GB and UK are interchangeable: either one strips both
		{
			"The.Office.UK.S01",
			SimpleInfo{Country: CountryList{"GB"}},
			"the office s01",
		},
		{
			"Show.Name.2019.S01",
			SimpleInfo{Year: "2019"},
			"show name s01",
		},
		{
			"Show.Name.S01",
			SimpleInfo{},
			"show name s01",
		},
	}

	for _, tt := range tests {
		result := CleanWithInfo(tt.title, tt.info)
		if result != tt.expected {
			t.Errorf("CleanWithInfo(%q) = %q, want %q", tt.title, result, tt.expected)
		}
	}
}

func TestTitleStartsWith(t *testing.T) {
	tests := []struct {
		parts        []string
		releaseTitle string
		info         SimpleInfo
		expected     bool
	}{
		{[]string{"Breaking Bad"}, "breaking bad s01e01 720p", SimpleInfo{}, true},
		{[]string{"Breaking Bad"}, "better call saul s01e01 720p", SimpleInfo{}, false},
		{[]string{"Inception", "2010"}, "inception 2010 1080p bluray", SimpleInfo{}, true},
	}

	for _, tt := range tests {
		result := TitleStartsWith(tt.parts, tt.releaseTitle, tt.info)
		if result != tt.expected {
			t.Errorf("TitleStartsWith(%v, %q) = %v, want %v", tt.parts, tt.releaseTitle, result, tt.expected)
		}
	}
}

func TestEpisodeTitleMatch(t *testing.T) {
	info := SimpleInfo{EpisodeTitle: "Face Off Part Two"}

	if !EpisodeTitleMatch([]string{"breaking bad"}, "breaking bad face off part two 720p", info) {
		t.Error("EpisodeTitleMatch with contained episode title = false, want true")
	}
	if EpisodeTitleMatch([]string{"breaking bad"}, "other show face off part two 720p", info) {
		t.Error("EpisodeTitleMatch with wrong show prefix = true, want false")
	}

	// short episode titles collide too easily and never match
	short := SimpleInfo{EpisodeTitle: "Pilot"}
	if EpisodeTitleMatch([]string{"breaking bad"}, "breaking bad pilot 720p", short) {
		t.Error("EpisodeTitleMatch with one-word episode title = true, want false")
	}
}
