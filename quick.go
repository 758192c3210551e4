package sortvis

import "context"

// quickSort recurses with the Lomuto partition scheme, pivot at the high
// end of each range. The engine, not the algorithm, decides when the whole
// array is done: completion is signalled only after the top-level call
// returns, never from inner recursion.
func quickSort(ctx context.Context, s *Sequence, st *stepper) error {
	return quickRange(ctx, s, st, 0, s.Len()-1)
}

func quickRange(ctx context.Context, s *Sequence, st *stepper, low, high int) error {
	if low >= high {
		return nil
	}
	pi, err := lomutoPartition(ctx, s, st, low, high)
	if err != nil {
		return err
	}
	if err := quickRange(ctx, s, st, low, pi-1); err != nil {
		return err
	}
	return quickRange(ctx, s, st, pi+1, high)
}

// lomutoPartition partitions [low, high] around the element at high and
// returns the pivot's final index.
func lomutoPartition(ctx context.Context, s *Sequence, st *stepper, low, high int) (int, error) {
	i := low - 1
	for j := low; j < high; j++ {
		if err := st.touch(ctx, j, high); err != nil {
			return 0, err
		}
		if s.Compare(j, high) < 0 {
			i++
			if i != j {
				s.Swap(i, j)
			}
		}
		st.release(j, high)
	}
	if err := st.touch(ctx, i+1, high); err != nil {
		return 0, err
	}
	if i+1 != high {
		s.Swap(i+1, high)
	}
	st.release(i+1, high)
	return i + 1, nil
}
