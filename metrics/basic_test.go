package metrics

import (
	"reflect"
	"runtime"
	"sync"
	"testing"
)

func TestBasicProvider_Counter_ReusedAndAccumulates(t *testing.T) {
	p := NewBasicProvider()

	c1 := p.Counter("comparisons")
	c2 := p.Counter("comparisons")

	if reflect.ValueOf(c1).Pointer() != reflect.ValueOf(c2).Pointer() {
		t.Fatalf("expected same counter instance for same name")
	}

	bc, ok := c1.(*BasicCounter)
	if !ok {
		t.Fatalf("expected *BasicCounter, got %T", c1)
	}

	c1.Add(3)
	c2.Add(2)
	if got := bc.Value(); got != 5 {
		t.Fatalf("counter value = %d; want 5", got)
	}

	if reflect.ValueOf(p.Counter("other")).Pointer() == reflect.ValueOf(c1).Pointer() {
		t.Fatalf("expected different counter instance for different name")
	}
}

func TestBasicProvider_UpDownCounter_Moves(t *testing.T) {
	p := NewBasicProvider()
	u := p.UpDownCounter("active_runs")

	bu, ok := u.(*BasicUpDownCounter)
	if !ok {
		t.Fatalf("expected *BasicUpDownCounter, got %T", u)
	}

	u.Add(+1)
	u.Add(-1)
	u.Add(+1)
	if got := bu.Value(); got != 1 {
		t.Fatalf("updown value = %d; want 1", got)
	}
}

func TestBasicProvider_Histogram_RecordsStats(t *testing.T) {
	p := NewBasicProvider()
	h := p.Histogram("run_duration_seconds")

	bh, ok := h.(*BasicHistogram)
	if !ok {
		t.Fatalf("expected *BasicHistogram, got %T", h)
	}

	h.Record(0.1)
	h.Record(0.3)
	h.Record(0.2)
	v := bh.Value()
	if v.Count != 3 {
		t.Fatalf("count = %d; want 3", v.Count)
	}
	if v.Min != 0.1 || v.Max != 0.3 {
		t.Fatalf("min/max = (%v,%v); want (0.1,0.3)", v.Min, v.Max)
	}
	if v.Mean < 0.19 || v.Mean > 0.21 {
		t.Fatalf("mean = %v; want ~0.2", v.Mean)
	}
}

func TestBasicProvider_Concurrent_SameInstrument(t *testing.T) {
	p := NewBasicProvider()
	n := 50
	ptrs := make([]uintptr, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			ptrs[idx] = reflect.ValueOf(p.Counter("shared")).Pointer()
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if ptrs[i] != ptrs[0] {
			t.Fatalf("expected same pointer for all retrieved counters; mismatch at %d", i)
		}
	}
}

func TestBasicProvider_Concurrent_CounterAdd(t *testing.T) {
	p := NewBasicProvider()
	c := p.Counter("accesses")
	bc := c.(*BasicCounter)

	workers := runtime.NumCPU() * 2
	iters := 1000
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	if got, want := bc.Value(), int64(workers*iters); got != want {
		t.Fatalf("counter = %d; want %d", got, want)
	}
}
