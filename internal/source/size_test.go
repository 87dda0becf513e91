package source

import (
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		ok       bool
	}{
		{"1.5GB", 1536, true},
		{"2GB", 2048, true},
		{"1.5GiB", 1536, true},
		{"700MB", 700, true},
		{"700.4MB", 700, true},
		{"700 MB", 700, true},
		{"345MiB", 345, true},
		{"512KB", 0, true},
		{"2048000KB", 2048, true},
		{"500000KiB", 512, true},
		{"1.4TB", 0, false},
		{"unknown", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		result, ok := ParseSize(tt.input)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("ParseSize(%q) = (%d, %v), want (%d, %v)", tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}
