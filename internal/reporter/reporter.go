package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Report captures one filtering run over a list of release titles
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Kind        string    `json:"kind"`  // episode, season, pack, movie, quality, info
	Query       string    `json:"query"` // human-readable description of the filter
	Items       []Item    `json:"items"`
	TotalItems  int       `json:"total_items"`
	TotalKept   int       `json:"total_kept"`
}

// Item is one release title with the engine's verdict and annotations
type Item struct {
	Title      string   `json:"title"`
	CleanTitle string   `json:"clean_title,omitempty"`
	Quality    string   `json:"quality,omitempty"`
	Info       []string `json:"info,omitempty"`
	SizeMB     int      `json:"size_mb,omitempty"`
	Matched    bool     `json:"matched"`
}

// Generate writes a timestamped report file and returns its path
func Generate(report Report, dir string) (string, error) {
	reportDir := dir
	if reportDir == "" {
		reportDir = DefaultReportDir()
	}
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	report.TotalItems = len(report.Items)
	report.TotalKept = 0
	for _, item := range report.Items {
		if item.Matched {
			report.TotalKept++
		}
	}

	// Generate filename with timestamp
	timestamp := report.GeneratedAt.Format("20060102_150405")
	filename := filepath.Join(reportDir, timestamp+".json")

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return filename, nil
}

// Load reads a report file written by Generate
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	return &report, nil
}

// DefaultReportDir returns the report directory path
func DefaultReportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/sourcesift/filter_results"
	}
	return filepath.Join(home, ".local/share/sourcesift/filter_results")
}

// ListReports returns all report files in the directory, newest first
func ListReports(dir string) ([]string, error) {
	if dir == "" {
		dir = DefaultReportDir()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}

// Summary generates the human-readable digest printed after a run
func Summary(report Report) string {
	var sb strings.Builder

	sb.WriteString("SOURCESIFT FILTER REPORT\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Filter: %s\n", report.Kind))
	if report.Query != "" {
		sb.WriteString(fmt.Sprintf("Query: %s\n", report.Query))
	}
	sb.WriteString("\n")

	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Titles checked: %d\n", report.TotalItems))
	sb.WriteString(fmt.Sprintf("Titles kept: %d\n", report.TotalKept))
	sb.WriteString(fmt.Sprintf("Titles rejected: %d\n", report.TotalItems-report.TotalKept))

	return sb.String()
}
