package sortvis

import "context"

// bubbleSort sweeps adjacent pairs, bubbling the largest remaining element
// to the end of the unsorted prefix. A sweep without a swap ends the sort.
func bubbleSort(ctx context.Context, s *Sequence, st *stepper) error {
	n := s.Len()
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if err := st.touch(ctx, j, j+1); err != nil {
				return err
			}
			if s.Compare(j, j+1) > 0 {
				s.Swap(j, j+1)
				swapped = true
			}
			st.release(j, j+1)
		}
		if !swapped {
			break
		}
	}
	return nil
}
