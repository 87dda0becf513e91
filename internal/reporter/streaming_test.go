package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestStreamingReporter(t *testing.T) {
	dir := t.TempDir()

	sr, err := NewStreamingReporter("episode", "Breaking Bad S1E5", dir)
	if err != nil {
		t.Fatalf("NewStreamingReporter() error = %v", err)
	}
	defer sr.Close()

	ctx := context.Background()
	items := []Item{
		{Title: "Breaking.Bad.S01E05.720p", Matched: true},
		{Title: "Breaking.Bad.S01E06.720p", Matched: false},
		{Title: "Breaking.Bad.S01E05.1080p", Matched: true},
	}
	for _, item := range items {
		if err := sr.WriteItem(ctx, item); err != nil {
			t.Fatalf("WriteItem() error = %v", err)
		}
	}

	if err := sr.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	// Summary carries the run totals without the item list
	totals := sr.Summary()
	if totals.TotalItems != 3 || totals.TotalKept != 2 {
		t.Errorf("Summary() totals = %d/%d, want 3/2", totals.TotalItems, totals.TotalKept)
	}
	if totals.Kind != "episode" || totals.Query != "Breaking Bad S1E5" {
		t.Errorf("Summary() header = %q/%q, want episode/Breaking Bad S1E5", totals.Kind, totals.Query)
	}
	if len(totals.Items) != 0 {
		t.Errorf("Summary() carries %d items, want 0", len(totals.Items))
	}

	// item stream holds one JSON object per line
	f, err := os.Open(sr.GetPath())
	if err != nil {
		t.Fatalf("opening item stream: %v", err)
	}
	defer f.Close()

	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var item Item
		if err := json.Unmarshal(scanner.Bytes(), &item); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", count+1, err)
		}
		count++
	}
	if count != 3 {
		t.Errorf("item stream has %d lines, want 3", count)
	}

	// summary file carries the totals
	summaryPath := strings.TrimSuffix(sr.GetPath(), "_items.jsonl") + "_summary.json"
	summary, err := Load(summaryPath)
	if err != nil {
		t.Fatalf("Load(summary) error = %v", err)
	}
	if summary.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", summary.TotalItems)
	}
	if summary.TotalKept != 2 {
		t.Errorf("TotalKept = %d, want 2", summary.TotalKept)
	}
}

func TestStreamingReporterCancelled(t *testing.T) {
	dir := t.TempDir()

	sr, err := NewStreamingReporter("episode", "", dir)
	if err != nil {
		t.Fatalf("NewStreamingReporter() error = %v", err)
	}
	defer sr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sr.WriteItem(ctx, Item{Title: "x"}); err == nil {
		t.Error("WriteItem() with cancelled context error = nil, want context.Canceled")
	}
}
