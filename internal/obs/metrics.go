// Package obs collects lightweight run counters, in the lock-free
// atomic-counter style this codebase uses for its event and queue metrics.
package obs

import "sync/atomic"

// Metrics accumulates counts for one ingest+execution run.
type Metrics struct {
	booksSeen      uint64
	tradesSeen     uint64
	tasksScheduled uint64
	tasksExecuted  uint64
	tradesDropped  uint64
}

// NewMetrics allocates an empty counter set.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncBooksSeen records one book-snapshot record read from the input stream.
func (m *Metrics) IncBooksSeen() { atomic.AddUint64(&m.booksSeen, 1) }

// IncTradesSeen records one trade record read from the input stream.
func (m *Metrics) IncTradesSeen() { atomic.AddUint64(&m.tradesSeen, 1) }

// IncTasksScheduled records one task node added to the dependency graph.
func (m *Metrics) IncTasksScheduled() { atomic.AddUint64(&m.tasksScheduled, 1) }

// IncTasksExecuted records one task node completing during execution.
func (m *Metrics) IncTasksExecuted() { atomic.AddUint64(&m.tasksExecuted, 1) }

// IncTradesDropped records a trade dropped because its symbol has no book
// recorded yet.
func (m *Metrics) IncTradesDropped() { atomic.AddUint64(&m.tradesDropped, 1) }

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	BooksSeen      uint64
	TradesSeen     uint64
	TasksScheduled uint64
	TasksExecuted  uint64
	TradesDropped  uint64
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		BooksSeen:      atomic.LoadUint64(&m.booksSeen),
		TradesSeen:     atomic.LoadUint64(&m.tradesSeen),
		TasksScheduled: atomic.LoadUint64(&m.tasksScheduled),
		TasksExecuted:  atomic.LoadUint64(&m.tasksExecuted),
		TradesDropped:  atomic.LoadUint64(&m.tradesDropped),
	}
}
