package match

import (
	"context"
	"runtime"
	"sync"
)

// Filter is the common surface of the episode, season-pack and show-pack
// filters. Implementations must be safe for concurrent Match calls.
type Filter interface {
	Match(releaseTitle string) bool
}

// ParallelConfig holds configuration for parallel filtering
type ParallelConfig struct {
	Workers int // Number of concurrent workers (default: number of CPUs)
}

// DefaultParallelConfig returns optimal parallel filtering configuration
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Workers: runtime.NumCPU(),
	}
}

// ApplyFilter runs the filter over all titles using a worker pool and
// returns a verdict per title, index-aligned with the input.
// Supports context cancellation for graceful shutdown
func ApplyFilter(ctx context.Context, titles []string, filter Filter, config ParallelConfig) ([]bool, error) {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}

	verdicts := make([]bool, len(titles))

	// WaitGroup to track worker completion
	var wg sync.WaitGroup

	// Channel for title indexes to process
	indexChan := make(chan int, len(titles))

	// Start worker pool
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-indexChan:
					if !ok {
						return
					}
					verdicts[idx] = filter.Match(titles[idx])
				}
			}
		}()
	}

	// Send indexes to workers
	for i := range titles {
		select {
		case <-ctx.Done():
			close(indexChan)
			wg.Wait()
			return nil, ctx.Err()
		case indexChan <- i:
		}
	}
	close(indexChan)

	// Wait for all workers to complete
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return verdicts, nil
}
