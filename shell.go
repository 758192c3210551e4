package sortvis

import "context"

// shellSort runs gapped insertion passes with the gap sequence n/2, n/4, …
// down to 1. Integer halving always reaches a final gap of 1, so the last
// pass is a plain insertion sort regardless of n.
func shellSort(ctx context.Context, s *Sequence, st *stepper) error {
	n := s.Len()
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			key := s.At(i)
			j := i
			for j >= gap {
				if err := st.touch(ctx, j-gap, j); err != nil {
					return err
				}
				if s.CompareHeld(j-gap, key) <= 0 {
					st.release(j-gap, j)
					break
				}
				s.Set(j, s.At(j-gap))
				st.release(j-gap, j)
				j -= gap
			}
			s.Set(j, key)
		}
	}
	return nil
}
