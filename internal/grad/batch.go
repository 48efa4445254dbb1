package grad

import (
	"fmt"
	"runtime"
	"sync"
)

// BatchConfig controls worker fan-out for batch gradient evaluation.
type BatchConfig struct {
	NumWorkers   int // Number of worker goroutines to use.
	MinChunkSize int // Minimum points per goroutine to avoid overhead.
}

// DefaultBatchConfig returns sensible defaults based on CPU count.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		NumWorkers:   runtime.NumCPU(),
		MinChunkSize: 16,
	}
}

// BatchGradient computes the gradient of f at every point in the batch,
// chunking the batch across workers. Every point is an independent set of
// seeded passes sharing nothing but the frozen rule registry, so the
// chunks need no coordination. The first failure wins and no partial
// batch is returned.
//
// A batch smaller than one chunk runs sequentially.
func BatchGradient(f Callable, points [][]float64, cfg BatchConfig) ([][]float64, error) {
	n := len(points)
	out := make([][]float64, n)

	if cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		for i, point := range points {
			g, err := Gradient(f, point)
			if err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
			out[i] = g
		}
		return out, nil
	}

	chunkSize := (n + cfg.NumWorkers - 1) / cfg.NumWorkers
	if chunkSize < cfg.MinChunkSize {
		chunkSize = cfg.MinChunkSize
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				g, err := Gradient(f, points[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("point %d: %w", i, err)
					}
					mu.Unlock()
					return
				}
				out[i] = g
			}
		}(start, end)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
