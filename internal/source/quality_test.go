package source

import (
	"testing"
)

func TestGetQuality(t *testing.T) {
	tests := []struct {
		input    string
		expected Quality
	}{
		{"Movie.2020.720p.WEB-DL", Quality720},
		{"Movie.2020.72op.HDTV", Quality720},
		{"Movie.2020.1080p.BluRay.x264", Quality1080},
		{"Movie.2020.1o80p.WEB", Quality1080},
		{"Movie.2020.2160p.UHD.BluRay", Quality4K},
		{"Movie.2020.216op.WEB", Quality4K},
		{"Movie 2020 4K", Quality4K},
		{"Movie.2020.4K.HDR", Quality4K},
		{"4kids tv show", QualitySD},
		{"Movie.2020.DVDRip.XviD", QualitySD},
		{"Show.SD.rip", QualitySD},
		{"Movie.2160p.HEVC", Quality4K},
		{"Movie 2020", QualitySD},
		// 720p check runs before the 2160 token check
		{"Movie 720p 2160p", Quality720},
	}

	for _, tt := range tests {
		result := GetQuality(tt.input)
		if result != tt.expected {
			t.Errorf("GetQuality(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestAcceptedResolutions(t *testing.T) {
	tests := []struct {
		maxRes   Quality
		minRes   Quality
		expected []Quality
	}{
		{Quality4K, QualitySD, []Quality{Quality4K, Quality1080, Quality720, QualitySD}},
		{Quality1080, QualitySD, []Quality{Quality1080, Quality720, QualitySD}},
		{Quality1080, Quality720, []Quality{Quality1080, Quality720}},
		{Quality4K, Quality4K, []Quality{Quality4K}},
		// unknown bounds widen to the full window
		{"", "", []Quality{Quality4K, Quality1080, Quality720, QualitySD}},
		// inverted bounds fall back to the widest minimum
		{Quality720, Quality4K, []Quality{Quality720, QualitySD}},
	}

	for _, tt := range tests {
		result := AcceptedResolutions(tt.maxRes, tt.minRes)
		if len(result) != len(tt.expected) {
			t.Errorf("AcceptedResolutions(%q, %q) = %v, want %v", tt.maxRes, tt.minRes, result, tt.expected)
			continue
		}
		for _, q := range tt.expected {
			if !result[q] {
				t.Errorf("AcceptedResolutions(%q, %q) missing %q", tt.maxRes, tt.minRes, q)
			}
		}
	}
}
