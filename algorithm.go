package sortvis

import "context"

// Algorithm identifies one of the built-in sorting procedures.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Cocktail  Algorithm = "cocktail"
	Gnome     Algorithm = "gnome"
	Insertion Algorithm = "insertion"
	Selection Algorithm = "selection"
	Shell     Algorithm = "shell"
	Quick     Algorithm = "quick"
	Merge     Algorithm = "merge"
	Heap      Algorithm = "heap"
	Radix     Algorithm = "radix"
)

// sortProc is the shape shared by all algorithm implementations: sort s in
// place in the algorithm's canonical comparison/movement order, suspending
// via st at every step that would otherwise compare or move elements, and
// return st's error unmodified the first time it reports cancellation.
type sortProc func(ctx context.Context, s *Sequence, st *stepper) error

var algorithms = map[Algorithm]sortProc{
	Bubble:    bubbleSort,
	Cocktail:  cocktailSort,
	Gnome:     gnomeSort,
	Insertion: insertionSort,
	Selection: selectionSort,
	Shell:     shellSort,
	Quick:     quickSort,
	Merge:     mergeSort,
	Heap:      heapSort,
	Radix:     radixSort,
}

// Algorithms returns the built-in identifiers in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		Bubble, Cocktail, Gnome, Insertion, Selection,
		Shell, Quick, Merge, Heap, Radix,
	}
}

// Valid reports whether a names a built-in algorithm.
func (a Algorithm) Valid() bool {
	_, ok := algorithms[a]
	return ok
}
