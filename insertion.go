package sortvis

import "context"

// insertionSort lifts each element out as a held key and shifts the sorted
// prefix right until the key's slot opens up. Comparisons against the held
// key route through CompareHeld so only the in-sequence operand counts as
// a read.
func insertionSort(ctx context.Context, s *Sequence, st *stepper) error {
	n := s.Len()
	for i := 1; i < n; i++ {
		key := s.At(i)
		j := i - 1
		for j >= 0 {
			if err := st.touch(ctx, j, j+1); err != nil {
				return err
			}
			if s.CompareHeld(j, key) <= 0 {
				st.release(j, j+1)
				break
			}
			s.Set(j+1, s.At(j))
			st.release(j, j+1)
			j--
		}
		s.Set(j+1, key)
	}
	return nil
}
