package sortvis

import "context"

// radixSort is least-significant-digit base-10: one stable counting-sort
// pass per digit place while floor(max/exp) > 0. The bulk counting phase
// reads every element without pacing; only the write-back of each pass
// suspends, one index at a time.
func radixSort(ctx context.Context, s *Sequence, st *stepper) error {
	n := s.Len()
	if n == 0 {
		return nil
	}
	maxVal := s.At(0)
	for i := 1; i < n; i++ {
		if v := s.At(i); v > maxVal {
			maxVal = v
		}
	}
	for exp := 1; maxVal/exp > 0; exp *= 10 {
		if err := radixPass(ctx, s, st, exp); err != nil {
			return err
		}
	}
	return nil
}

// radixPass counting-sorts on digit floor(value/exp) % 10. Placement scans
// the input right to left against cumulative counts, which is what keeps
// equal digits in their relative input order; that stability is required
// for correctness across passes.
func radixPass(ctx context.Context, s *Sequence, st *stepper, exp int) error {
	n := s.Len()
	in := make([]int, n)
	var counts [10]int
	for i := 0; i < n; i++ {
		in[i] = s.At(i)
		counts[in[i]/exp%10]++
	}
	for d := 1; d < 10; d++ {
		counts[d] += counts[d-1]
	}

	out := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		d := in[i] / exp % 10
		counts[d]--
		out[counts[d]] = in[i]
	}

	for i := 0; i < n; i++ {
		if err := st.touch(ctx, i); err != nil {
			return err
		}
		s.Set(i, out[i])
		st.release(i)
	}
	return nil
}
