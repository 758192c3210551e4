package sortvis

import "context"

// gnomeSort walks a single pointer forward while adjacent pairs are in
// order and swaps backward otherwise. The pointer never goes below 1:
// index 0 is in order relative to itself, so a backward swap into it
// bounces the pointer straight back to 1.
func gnomeSort(ctx context.Context, s *Sequence, st *stepper) error {
	n := s.Len()
	for i := 1; i < n; {
		if err := st.touch(ctx, i-1, i); err != nil {
			return err
		}
		if s.Compare(i-1, i) <= 0 {
			st.release(i-1, i)
			i++
			continue
		}
		s.Swap(i-1, i)
		st.release(i-1, i)
		i--
		if i == 0 {
			i = 1
		}
	}
	return nil
}
