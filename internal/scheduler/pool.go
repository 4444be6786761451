package scheduler

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/yanun0323/logs"
)

// Run executes every node in nodes on a pool of workers goroutines, honoring
// the partial order implied by each node's successor edges. Nodes with no
// unsatisfied predecessors may run on any worker, in any order; a fixed-size
// ready queue and per-node in-degree counters are all the bookkeeping this
// needs, since the graph this package builds is a set of independent
// per-symbol chains rather than a general DAG.
//
// If nodes is empty, Run logs and returns immediately without starting any
// workers.
func Run(nodes []*Node, workers int) {
	if len(nodes) == 0 {
		logs.Warnf("scheduler: no flow task declared")
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ready := make(chan *Node, len(nodes))
	var remaining int64 = int64(len(nodes))

	for _, n := range nodes {
		if n.ready() {
			ready <- n
		}
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for n := range ready {
				n.run()
				for _, next := range n.successors {
					if atomic.AddInt32(&next.indegree, -1) == 0 {
						ready <- next
					}
				}
				if atomic.AddInt64(&remaining, -1) == 0 {
					close(ready)
				}
			}
		}()
	}
	wg.Wait()
}
