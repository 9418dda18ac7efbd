package markov

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrZeroTotalWeight reports a sampling request whose weights sum to
// zero, leaving nothing to choose from.
var ErrZeroTotalWeight = errors.New("total sample weight must be positive")

// Sample returns an index chosen with probability proportional to its
// weight: over repeated calls, index i is returned with long-run
// frequency weights[i] / sum(weights). The weights must be non-negative
// and sum to a positive value.
func Sample(r *rand.Rand, weights []int) (int, error) {
	var total int
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: negative weight %d at index %d", ErrInvalidParams, w, i)
		}
		total += w
	}
	if total <= 0 {
		return 0, ErrZeroTotalWeight
	}

	// Draw a point in the total-weight range and scan for its bucket.
	n := r.IntN(total)
	for i, w := range weights {
		n -= w
		if n < 0 {
			return i, nil
		}
	}
	// The draw is strictly below the total, so the scan always lands
	// inside a bucket.
	panic("markov: discrete sample out of range")
}
