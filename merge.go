package sortvis

import "context"

// mergeSort is top-down, splitting at mid = (left+right)/2. Each merge
// materializes both halves into temporary buffers (every element read
// counts as an access) and merges back with a stable tie-break: on equal
// values the left buffer wins.
func mergeSort(ctx context.Context, s *Sequence, st *stepper) error {
	return mergeRange(ctx, s, st, 0, s.Len()-1)
}

func mergeRange(ctx context.Context, s *Sequence, st *stepper, left, right int) error {
	if left >= right {
		return nil
	}
	mid := (left + right) / 2
	if err := mergeRange(ctx, s, st, left, mid); err != nil {
		return err
	}
	if err := mergeRange(ctx, s, st, mid+1, right); err != nil {
		return err
	}
	return mergeBack(ctx, s, st, left, mid, right)
}

func mergeBack(ctx context.Context, s *Sequence, st *stepper, left, mid, right int) error {
	l := make([]int, mid-left+1)
	r := make([]int, right-mid)
	for i := range l {
		l[i] = s.At(left + i)
	}
	for j := range r {
		r[j] = s.At(mid + 1 + j)
	}

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		if err := st.touch(ctx, k); err != nil {
			return err
		}
		if s.CompareValues(l[i], r[j]) <= 0 {
			s.Set(k, l[i])
			i++
		} else {
			s.Set(k, r[j])
			j++
		}
		st.release(k)
		k++
	}
	for ; i < len(l); i++ {
		if err := st.touch(ctx, k); err != nil {
			return err
		}
		s.Set(k, l[i])
		st.release(k)
		k++
	}
	for ; j < len(r); j++ {
		if err := st.touch(ctx, k); err != nil {
			return err
		}
		s.Set(k, r[j])
		st.release(k)
		k++
	}
	return nil
}
