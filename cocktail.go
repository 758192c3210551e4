package sortvis

import "context"

// cocktailSort alternates forward and backward bubble sweeps, shrinking the
// active window from both ends each full pass. The outer loop terminates as
// soon as a forward sweep produces no swap; it does not wait for the
// matching backward sweep.
func cocktailSort(ctx context.Context, s *Sequence, st *stepper) error {
	start, end := 0, s.Len()-1
	for start < end {
		swapped := false
		for j := start; j < end; j++ {
			if err := st.touch(ctx, j, j+1); err != nil {
				return err
			}
			if s.Compare(j, j+1) > 0 {
				s.Swap(j, j+1)
				swapped = true
			}
			st.release(j, j+1)
		}
		end--
		if !swapped {
			break
		}

		swapped = false
		for j := end; j > start; j-- {
			if err := st.touch(ctx, j-1, j); err != nil {
				return err
			}
			if s.Compare(j-1, j) > 0 {
				s.Swap(j-1, j)
				swapped = true
			}
			st.release(j-1, j)
		}
		start++
		if !swapped {
			break
		}
	}
	return nil
}
