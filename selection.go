package sortvis

import "context"

// selectionSort grows a sorted prefix by scanning the unsorted suffix for
// its minimum. The probe and the best-so-far index are both highlighted on
// every step, and at most one swap happens per outer index; the swap is
// skipped entirely when the minimum is already in place.
func selectionSort(ctx context.Context, s *Sequence, st *stepper) error {
	n := s.Len()
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if err := st.touch(ctx, j, minIdx); err != nil {
				return err
			}
			c := s.Compare(j, minIdx)
			st.release(j, minIdx)
			if c < 0 {
				minIdx = j
			}
		}
		if minIdx == i {
			continue
		}
		if err := st.touch(ctx, i, minIdx); err != nil {
			return err
		}
		s.Swap(i, minIdx)
		st.release(i, minIdx)
	}
	return nil
}
