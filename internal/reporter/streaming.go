package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StreamingReporter writes report items incrementally so arbitrarily
// large title lists never have to be held in memory
type StreamingReporter struct {
	generatedAt time.Time
	kind        string
	query       string
	writer      *bufio.Writer
	file        *os.File
	encoder     *json.Encoder
	totalItems  int
	totalKept   int
}

// NewStreamingReporter creates a new streaming reporter writing one JSON
// item per line
func NewStreamingReporter(kind, query, dir string) (*StreamingReporter, error) {
	reportDir := dir
	if reportDir == "" {
		reportDir = DefaultReportDir()
	}
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	generatedAt := time.Now()
	timestamp := generatedAt.Format("20060102_150405")

	path := filepath.Join(reportDir, timestamp+"_items.jsonl")
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	writer := bufio.NewWriter(file)

	return &StreamingReporter{
		generatedAt: generatedAt,
		kind:        kind,
		query:       query,
		file:        file,
		writer:      writer,
		encoder:     json.NewEncoder(writer),
	}, nil
}

// WriteItem appends one verdict to the report (streaming)
func (sr *StreamingReporter) WriteItem(ctx context.Context, item Item) error {
	// Check for cancellation
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	sr.totalItems++
	if item.Matched {
		sr.totalKept++
	}

	if err := sr.encoder.Encode(item); err != nil {
		return fmt.Errorf("failed to write item: %w", err)
	}

	return nil
}

// Summary returns the run totals as a Report without items
func (sr *StreamingReporter) Summary() Report {
	return Report{
		GeneratedAt: sr.generatedAt,
		Kind:        sr.kind,
		Query:       sr.query,
		TotalItems:  sr.totalItems,
		TotalKept:   sr.totalKept,
	}
}

// Finalize writes the summary file alongside the item stream and flushes
func (sr *StreamingReporter) Finalize() error {
	if err := sr.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush items: %w", err)
	}

	data, err := json.MarshalIndent(sr.Summary(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	summaryPath := sr.file.Name()
	summaryPath = summaryPath[:len(summaryPath)-len("_items.jsonl")] + "_summary.json"
	if err := os.WriteFile(summaryPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	return nil
}

// Close closes the item stream
func (sr *StreamingReporter) Close() error {
	if sr.file == nil {
		return nil
	}
	if err := sr.file.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	return nil
}

// GetPath returns the path of the item stream file
func (sr *StreamingReporter) GetPath() string {
	return sr.file.Name()
}
