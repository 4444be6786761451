package scheduler

import (
	"sync"
	"testing"
)

func TestRunEmptyNodesDoesNotBlock(t *testing.T) {
	Run(nil, 4)
}

func TestRunExecutesEveryNode(t *testing.T) {
	const n = 50
	var mu sync.Mutex
	seen := make(map[string]bool, n)
	runs := 0

	b := NewBuilder()
	for i := 0; i < n; i++ {
		sym := string(rune('A' + i%26))
		b.Add(sym, func() {
			mu.Lock()
			seen[sym] = true
			runs++
			mu.Unlock()
		})
	}

	Run(b.Nodes(), 8)

	if runs != n || len(seen) != 26 {
		t.Fatalf("expected %d runs over 26 symbols, got %d runs over %d symbols", n, runs, len(seen))
	}
}

func TestRunPreservesPerSymbolOrder(t *testing.T) {
	b := NewBuilder()
	var order []int
	var mu sync.Mutex

	for i := 0; i < 20; i++ {
		i := i
		b.Add("BTCUSDT", func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	Run(b.Nodes(), 8)

	if len(order) != 20 {
		t.Fatalf("expected 20 recorded runs, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order violated at position %d: got %d", i, v)
		}
	}
}

// TestRunDeterministicAcrossWorkerCounts checks the property that permuting
// how independent per-symbol chains interleave never changes the final
// per-symbol output, by running the same workload at several worker counts
// and comparing each symbol's accumulated text.
func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	const symbols = 6
	const perSymbol = 30

	run := func(workers int) map[string]string {
		b := NewBuilder()
		var mu sync.Mutex
		out := make(map[string]string, symbols)

		for s := 0; s < symbols; s++ {
			sym := string(rune('A' + s))
			for i := 0; i < perSymbol; i++ {
				i := i
				sym := sym
				b.Add(sym, func() {
					mu.Lock()
					out[sym] += string(rune('0' + i%10))
					mu.Unlock()
				})
			}
		}
		Run(b.Nodes(), workers)
		return out
	}

	base := run(1)
	for _, workers := range []int{2, 4, 16} {
		got := run(workers)
		if len(got) != len(base) {
			t.Fatalf("workers=%d: expected %d symbols, got %d", workers, len(base), len(got))
		}
		for sym, want := range base {
			if got[sym] != want {
				t.Fatalf("workers=%d: symbol %s output diverged: got %q want %q", workers, sym, got[sym], want)
			}
		}
	}
}
