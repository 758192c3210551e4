package sortvis

import (
	"fmt"
	"math/rand"

	"github.com/ygrebnov/errorc"
)

// validateDataset checks the dataset rules: non-empty, positive values,
// pairwise distinct.
func validateDataset(values []int) error {
	if len(values) == 0 {
		return errorc.With(ErrInvalidDataset, errorc.String("reason", "empty sequence"))
	}
	seen := make(map[int]struct{}, len(values))
	for i, v := range values {
		if v <= 0 {
			return errorc.With(ErrInvalidDataset,
				errorc.String("reason", fmt.Sprintf("non-positive value %d at index %d", v, i)))
		}
		if _, dup := seen[v]; dup {
			return errorc.With(ErrInvalidDataset,
				errorc.String("reason", fmt.Sprintf("duplicate value %d at index %d", v, i)))
		}
		seen[v] = struct{}{}
	}
	return nil
}

// permutation returns the values 1..n shuffled by rng.
func permutation(n int, rng *rand.Rand) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}
