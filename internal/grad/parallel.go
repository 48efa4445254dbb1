package grad

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ParallelGradient computes the same partials as Gradient with one
// goroutine per input. The seeded passes are mutually independent and the
// rule registry is frozen before evaluation starts, so the passes share no
// mutable state; each goroutine writes only its own slot.
func ParallelGradient(f Callable, point []float64) ([]float64, error) {
	partials := make([]float64, len(point))

	var g errgroup.Group
	for i := range point {
		i := i
		g.Go(func() error {
			seed := make([]float64, len(point))
			seed[i] = 1
			out, err := f.CallWithSeed(point, seed)
			if err != nil {
				return fmt.Errorf("partial %d: %w", i, err)
			}
			partials[i] = out.Tangent
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}
