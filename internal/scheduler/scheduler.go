package scheduler

import (
	"fmt"

	"github.com/yanun0323/logs"

	"orderflow/internal/classifier"
	"orderflow/internal/model"
	"orderflow/internal/obs"
	"orderflow/internal/sink"
)

// Scheduler builds the per-symbol task graph from the record stream and
// drives its execution. It owns the (symbol -> classifier.State) and
// (symbol -> sink.Sink) maps; both are populated only during ingest
// (single-threaded) and only read during execution, so no locking is
// required (see spec's concurrency & resource model).
type Scheduler struct {
	outDir      string
	classifiers map[string]*classifier.State
	sinks       map[string]*sink.Sink
	builder     *Builder
	metrics     *obs.Metrics
}

// New creates a Scheduler that writes one "<symbol>.txt" file per instrument
// into outDir.
func New(outDir string, metrics *obs.Metrics) *Scheduler {
	if metrics == nil {
		metrics = obs.NewMetrics()
	}
	return &Scheduler{
		outDir:      outDir,
		classifiers: make(map[string]*classifier.State),
		sinks:       make(map[string]*sink.Sink),
		builder:     NewBuilder(),
		metrics:     metrics,
	}
}

// HandleBook resolves or lazily creates symbol's classifier and sink. The
// very first snapshot for a symbol is applied synchronously, right here
// during ingest, so the graph never contains a "primordial" task with no
// predecessor and no prior book to diff against. Every subsequent snapshot
// becomes a task node chained after that symbol's previous task.
func (s *Scheduler) HandleBook(symbol string, book *model.OrderBookRecord) error {
	s.metrics.IncBooksSeen()

	cls, known := s.classifiers[symbol]
	if !known {
		sk, err := sink.New(s.outDir, symbol)
		if err != nil {
			return fmt.Errorf("register symbol %s: %w", symbol, err)
		}
		cls = classifier.New()
		s.classifiers[symbol] = cls
		s.sinks[symbol] = sk

		if err := sk.Write(cls.UpdateBook(book)); err != nil {
			return err
		}
		return nil
	}

	sk := s.sinks[symbol]
	s.builder.Add(symbol, func() {
		if err := sk.Write(cls.UpdateBook(book)); err != nil {
			logs.Errorf("sink write failed for %s: %v", symbol, err)
		}
	})
	s.metrics.IncTasksScheduled()
	return nil
}

// HandleTrade chains a trade-record task after symbol's previous task. If
// no book has ever been recorded for symbol, the classifier map has no entry
// for it; the task, once it runs, logs a diagnostic and drops the trade
// rather than failing the whole run.
func (s *Scheduler) HandleTrade(symbol string, trade *model.TradeRecord) {
	s.metrics.IncTradesSeen()

	cls, known := s.classifiers[symbol]
	s.builder.Add(symbol, func() {
		if !known {
			logs.Errorf("trade for unknown symbol %q dropped", symbol)
			s.metrics.IncTradesDropped()
			return
		}
		cls.RecordTrade(trade)
	})
	s.metrics.IncTasksScheduled()
}

// Execute runs the accumulated task graph on a pool of workers goroutines.
func (s *Scheduler) Execute(workers int) {
	nodes := s.builder.Nodes()
	wrapped := make([]*Node, len(nodes))
	for i, n := range nodes {
		node := n
		wrapped[i] = wrapCounting(node, s.metrics)
	}
	Run(wrapped, workers)
}

// wrapCounting decorates a node's body so execution is reflected in metrics
// without touching the scheduling logic in graph.go/pool.go.
func wrapCounting(n *Node, metrics *obs.Metrics) *Node {
	inner := n.run
	n.run = func() {
		inner()
		metrics.IncTasksExecuted()
	}
	return n
}

// Close flushes and closes every symbol's sink, returning the first error
// encountered, if any.
func (s *Scheduler) Close() error {
	var firstErr error
	for symbol, sk := range s.sinks {
		if err := sk.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close sink %s: %w", symbol, err)
		}
	}
	return firstErr
}
