package scheduler

import "testing"

func TestBuilderChainsSameSymbolSequentially(t *testing.T) {
	b := NewBuilder()
	first := b.Add("BTCUSDT", func() {})
	second := b.Add("BTCUSDT", func() {})

	if len(first.successors) != 1 || first.successors[0] != second {
		t.Fatalf("expected first to have second as its sole successor")
	}
	if second.indegree != 1 {
		t.Fatalf("expected second indegree 1, got %d", second.indegree)
	}
	if first.indegree != 0 {
		t.Fatalf("expected first indegree 0, got %d", first.indegree)
	}
}

func TestBuilderDoesNotChainDistinctSymbols(t *testing.T) {
	b := NewBuilder()
	btc := b.Add("BTCUSDT", func() {})
	eth := b.Add("ETHUSDT", func() {})

	if len(btc.successors) != 0 {
		t.Fatalf("expected BTCUSDT node to have no successors, got %d", len(btc.successors))
	}
	if eth.indegree != 0 {
		t.Fatalf("expected ETHUSDT node indegree 0, got %d", eth.indegree)
	}
}

func TestBuilderNodesPreservesInsertionOrder(t *testing.T) {
	b := NewBuilder()
	b.Add("BTCUSDT", func() {})
	b.Add("ETHUSDT", func() {})
	b.Add("BTCUSDT", func() {})

	nodes := b.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[0].Symbol != "BTCUSDT" || nodes[1].Symbol != "ETHUSDT" || nodes[2].Symbol != "BTCUSDT" {
		t.Fatalf("unexpected node order: %v", []string{nodes[0].Symbol, nodes[1].Symbol, nodes[2].Symbol})
	}
}

func TestNodeReadyReflectsIndegree(t *testing.T) {
	b := NewBuilder()
	first := b.Add("BTCUSDT", func() {})
	second := b.Add("BTCUSDT", func() {})

	if !first.ready() {
		t.Fatalf("expected first node to be ready")
	}
	if second.ready() {
		t.Fatalf("expected second node to not be ready before first runs")
	}
}
