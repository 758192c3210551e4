package sortvis

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var sortInputs = [][]int{
	{1},
	{2, 1},
	{1, 2, 3, 4, 5},
	{5, 4, 3, 2, 1},
	{3, 1, 2},
	{2, 3, 4, 5, 1},
	{7, 3, 9, 1, 4, 8, 2, 6, 5},
	{12, 5, 27, 1, 33, 8, 19, 2, 41, 16, 3, 25},
	{170, 45, 75, 90, 802, 24, 2, 66}, // multi-digit spread exercises several radix passes
}

func TestAlgorithms_SortAndPreservePermutation(t *testing.T) {
	for _, alg := range Algorithms() {
		alg := alg
		t.Run(string(alg), func(t *testing.T) {
			for _, input := range sortInputs {
				original := append([]int(nil), input...)
				seq, st, rec := newTestRig(append([]int(nil), input...))

				err := algorithms[alg](context.Background(), seq, st)
				require.NoError(t, err, "input %v", input)

				got := seq.Values()
				require.True(t, isAscending(got), "input %v got %v", input, got)
				require.True(t, isPermutation(original, got), "input %v got %v", input, got)

				// every "about to touch" mark was cleared again
				require.Equal(t, rec.count(HighlightOn), rec.count(HighlightOff))
			}
		})
	}
}

func TestAlgorithms_CancelBeforeFirstStep(t *testing.T) {
	input := []int{4, 2, 5, 1, 3}
	for _, alg := range Algorithms() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		seq, st, rec := newTestRig(append([]int(nil), input...))
		err := algorithms[alg](ctx, seq, st)

		require.ErrorIs(t, err, ErrRunCancelled, "algorithm %s", alg)
		require.Equal(t, input, seq.Values(), "algorithm %s", alg)
		require.Zero(t, rec.count(Swap), "algorithm %s", alg)
		require.Zero(t, rec.count(Overwrite), "algorithm %s", alg)
	}
}

// tripPace cancels the run context after a fixed number of suspensions.
type tripPace struct {
	remaining int
	cancel    context.CancelFunc
}

func (p *tripPace) wait(ctx context.Context) error {
	if p.remaining <= 0 {
		p.cancel()
	}
	p.remaining--
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRunCancelled, err)
	}
	return nil
}

// The swap-only algorithms never hold a value outside the sequence, so the
// dataset must be a permutation of the input at every suspension point,
// wherever cancellation lands.
func TestSwapFamily_MidRunCancelKeepsPermutation(t *testing.T) {
	algs := []Algorithm{Bubble, Cocktail, Gnome, Selection, Quick, Heap}
	input := []int{7, 3, 9, 1, 4, 8, 2, 6, 5}

	for _, alg := range algs {
		for steps := 0; steps < 30; steps += 3 {
			ctx, cancel := context.WithCancel(context.Background())
			em := &emitter{}
			seq := newSequence(append([]int(nil), input...), em, nil)
			st := newStepper(em, &tripPace{remaining: steps, cancel: cancel})

			err := algorithms[alg](ctx, seq, st)
			if err != nil {
				require.ErrorIs(t, err, ErrRunCancelled)
			}
			require.True(t, isPermutation(input, seq.Values()),
				"algorithm %s cancelled after %d steps left %v", alg, steps, seq.Values())
			cancel()
		}
	}
}

func TestBubble_EventOrderAndCounters(t *testing.T) {
	seq, st, rec := newTestRig([]int{3, 1, 2})
	require.NoError(t, bubbleSort(context.Background(), seq, st))

	want := []Event{
		{Kind: Compare, I: 0, J: 1, V: 3, W: 1},
		{Kind: Swap, I: 0, J: 1, V: 1, W: 3},
		{Kind: Compare, I: 1, J: 2, V: 3, W: 2},
		{Kind: Swap, I: 1, J: 2, V: 2, W: 3},
		{Kind: Compare, I: 0, J: 1, V: 1, W: 2},
	}
	if diff := cmp.Diff(want, rec.filter(Compare, Swap)); diff != "" {
		t.Fatalf("compare/swap stream mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, uint64(3), seq.Comparisons())
	require.Equal(t, uint64(14), seq.Accesses())
	require.Equal(t, []int{1, 2, 3}, seq.Values())
}

func TestSelection_OneSwapPerOuterIndex(t *testing.T) {
	// every prefix minimum arrives from the far end, so each of the four
	// outer iterations performs its single swap
	seq, st, _ := newTestRig([]int{2, 3, 4, 5, 1})
	require.NoError(t, selectionSort(context.Background(), seq, st))

	require.Equal(t, uint64(4), seq.Swaps())
	require.Equal(t, []int{1, 2, 3, 4, 5}, seq.Values())
}

func TestSelection_SkipsNoopSwaps(t *testing.T) {
	// reversed input: 0/4 and 1/3 trade places, the middle element never
	// moves, and outer iterations whose minimum is already in place swap
	// nothing at all
	seq, st, _ := newTestRig([]int{5, 4, 3, 2, 1})
	require.NoError(t, selectionSort(context.Background(), seq, st))

	require.Equal(t, uint64(2), seq.Swaps())
	require.Equal(t, []int{1, 2, 3, 4, 5}, seq.Values())
}

func TestRadixPass_StableOnEqualDigits(t *testing.T) {
	// all values share the ones digit; the exp=1 pass must keep their
	// relative input order
	seq, st, _ := newTestRig([]int{23, 13, 33})
	require.NoError(t, radixPass(context.Background(), seq, st, 1))
	require.Equal(t, []int{23, 13, 33}, seq.Values())

	// equal tens digits likewise keep their order within the exp=10 pass
	seq, st, _ = newTestRig([]int{23, 21, 13})
	require.NoError(t, radixPass(context.Background(), seq, st, 10))
	require.Equal(t, []int{13, 23, 21}, seq.Values())
}

func TestMerge_LeftBufferWinsTies(t *testing.T) {
	// CompareValues(l, r) <= 0 must take the left element; observable as
	// the comparison event stream never emitting a right pick on equality
	seq, st, rec := newTestRig([]int{2, 1, 4, 3})
	require.NoError(t, mergeSort(context.Background(), seq, st))
	require.Equal(t, []int{1, 2, 3, 4}, seq.Values())

	// every merge comparison is a held-values comparison
	for _, ev := range rec.filter(Compare) {
		require.Equal(t, -1, ev.I)
		require.Equal(t, -1, ev.J)
	}
}

func TestQuick_PartitionPlacesPivot(t *testing.T) {
	seq, st, _ := newTestRig([]int{8, 3, 5, 1, 4})
	pi, err := lomutoPartition(context.Background(), seq, st, 0, 4)
	require.NoError(t, err)

	values := seq.Values()
	require.Equal(t, 4, values[pi])
	for i := 0; i < pi; i++ {
		require.Less(t, values[i], values[pi])
	}
	for i := pi + 1; i < len(values); i++ {
		require.Greater(t, values[i], values[pi])
	}
}
