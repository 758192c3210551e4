package sortvis

import "context"

// heapSort builds a max-heap bottom-up, sifting down from n/2-1 to 0, then
// repeatedly swaps the root with the last unsorted element and re-heapifies
// the shrunken heap.
func heapSort(ctx context.Context, s *Sequence, st *stepper) error {
	n := s.Len()
	for i := n/2 - 1; i >= 0; i-- {
		if err := siftDown(ctx, s, st, n, i); err != nil {
			return err
		}
	}
	for end := n - 1; end > 0; end-- {
		if err := st.touch(ctx, 0, end); err != nil {
			return err
		}
		s.Swap(0, end)
		st.release(0, end)
		if err := siftDown(ctx, s, st, end, 0); err != nil {
			return err
		}
	}
	return nil
}

// siftDown restores the max-heap property below root within the first n
// elements. Child comparisons are strict: a tie keeps the current largest.
func siftDown(ctx context.Context, s *Sequence, st *stepper, n, root int) error {
	for {
		largest := root
		left, right := 2*root+1, 2*root+2
		if left < n {
			if err := st.touch(ctx, left, largest); err != nil {
				return err
			}
			c := s.Compare(left, largest)
			st.release(left, largest)
			if c > 0 {
				largest = left
			}
		}
		if right < n {
			if err := st.touch(ctx, right, largest); err != nil {
				return err
			}
			c := s.Compare(right, largest)
			st.release(right, largest)
			if c > 0 {
				largest = right
			}
		}
		if largest == root {
			return nil
		}
		if err := st.touch(ctx, root, largest); err != nil {
			return err
		}
		s.Swap(root, largest)
		st.release(root, largest)
		root = largest
	}
}
