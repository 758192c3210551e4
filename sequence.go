package sortvis

import (
	"cmp"
	"sync"
	"sync/atomic"
)

// Sequence is the instrumented integer container algorithms operate on.
// Every read, write and comparison is counted, and every comparison, swap
// and overwrite is emitted as an event carrying the values involved.
//
// Counting rules:
//   - At / Set: accesses += 1
//   - Compare: comparisons += 1, accesses += 2 (both operands read)
//   - CompareHeld: comparisons += 1, accesses += 1 (one operand read)
//   - CompareValues: comparisons += 1 (both operands already read)
//   - Swap: accesses += 4 (two reads, two writes)
//
// Counters are monotonically non-decreasing for the lifetime of one run;
// the engine resets them only by building a fresh Sequence at run start.
// Indices are produced by algorithm logic and are trusted to be in range;
// an out-of-range index is a programming error and panics via the slice.
//
// Writes are trusted to preserve the permutation invariant: algorithms only
// ever write values previously read out of the sequence. Mutation happens
// on the single run goroutine; the lock exists so Values can take a
// consistent snapshot from other goroutines.
type Sequence struct {
	mu     sync.RWMutex
	values []int
	em     *emitter
	ins    *instruments

	comparisons atomic.Uint64
	accesses    atomic.Uint64
	swaps       atomic.Uint64
}

func newSequence(values []int, em *emitter, ins *instruments) *Sequence {
	return &Sequence{values: values, em: em, ins: ins}
}

// Len returns the number of elements.
func (s *Sequence) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// At reads the element at index i.
func (s *Sequence) At(i int) int {
	s.access(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[i]
}

// Set writes v to index i and emits an Overwrite event.
func (s *Sequence) Set(i, v int) {
	s.access(1)
	s.mu.Lock()
	s.values[i] = v
	s.mu.Unlock()
	s.em.overwrite(i, v)
}

// Compare compares the elements at indices i and j, returning a negative,
// zero or positive result in the usual way.
func (s *Sequence) Compare(i, j int) int {
	s.access(2)
	s.compared()
	s.mu.RLock()
	v, w := s.values[i], s.values[j]
	s.mu.RUnlock()
	s.em.compare(i, j, v, w)
	return cmp.Compare(v, w)
}

// CompareHeld compares the element at index i against a value v held
// outside the sequence (an insertion-sort key lifted out earlier). Only
// the in-sequence operand counts as a read.
func (s *Sequence) CompareHeld(i, v int) int {
	s.access(1)
	s.compared()
	s.mu.RLock()
	w := s.values[i]
	s.mu.RUnlock()
	s.em.compare(i, -1, w, v)
	return cmp.Compare(w, v)
}

// CompareValues compares two values that were both read out of the
// sequence earlier (the merge step working on materialized sub-buffers).
// It counts the comparison without touching the sequence.
func (s *Sequence) CompareValues(a, b int) int {
	s.compared()
	s.em.compare(-1, -1, a, b)
	return cmp.Compare(a, b)
}

// Swap exchanges the elements at indices i and j in place.
func (s *Sequence) Swap(i, j int) {
	s.access(4)
	s.swaps.Add(1)
	if s.ins != nil {
		s.ins.swaps.Add(1)
	}
	s.mu.Lock()
	s.values[i], s.values[j] = s.values[j], s.values[i]
	v, w := s.values[i], s.values[j]
	s.mu.Unlock()
	s.em.swap(i, j, v, w)
}

// Values returns a copy of the current element order.
func (s *Sequence) Values() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}

// Comparisons returns the number of comparisons performed so far.
func (s *Sequence) Comparisons() uint64 { return s.comparisons.Load() }

// Accesses returns the number of element reads and writes so far.
func (s *Sequence) Accesses() uint64 { return s.accesses.Load() }

// Swaps returns the number of swaps performed so far.
func (s *Sequence) Swaps() uint64 { return s.swaps.Load() }

func (s *Sequence) access(n uint64) {
	s.accesses.Add(n)
	if s.ins != nil {
		s.ins.accesses.Add(int64(n))
	}
}

func (s *Sequence) compared() {
	s.comparisons.Add(1)
	if s.ins != nil {
		s.ins.comparisons.Add(1)
	}
}
