package dpll

import (
	"runtime"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// pool coordinates the parallel search. Workers pull instances from the
// shared queue, run the sequential engine on them and publish each branch
// sibling back to the queue for a peer to claim.
//
// Instances are never shared: an instance is owned by exactly one stack
// frame or one queue slot at any moment, so no locking protects the CNFs
// themselves, only the queue and the result slot.
type pool struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []*CNF // guarded by mu

	workers int64
	idle    int64 // nb of workers currently waiting on the queue

	cancel atomic.Bool

	resMu     sync.Mutex
	published bool
	result    Result
}

// SolveParallel runs the DPLL procedure on cnf using one worker per logical
// CPU. The first Sat result found wins; Unsat is certified when the queue
// is empty and every worker is idle.
func SolveParallel(cnf *CNF) Result {
	return solveParallel(cnf, runtime.NumCPU())
}

func solveParallel(cnf *CNF, workers int) Result {
	if workers < 1 {
		workers = 1
	}
	p := &pool{
		queue:   []*CNF{cnf},
		workers: int64(workers),
		idle:    int64(workers),
		result:  Result{Status: Unsat},
	}
	p.cond = sync.NewCond(&p.mu)
	log.Debugf("starting %d workers on %d clauses over %d variables", workers, len(cnf.Clauses), len(cnf.Names))
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		id := i
		g.Go(func() error {
			p.work(id)
			return nil
		})
	}
	_ = g.Wait() // workers do not fail; they publish through the result slot
	return p.result
}

// work is the worker loop. It blocks on the queue, runs the engine on each
// item and either publishes a Sat result or returns the worker to the
// queue. Cancellation is cooperative: the flag is checked when waking from
// the empty-queue wait, after each work item, and polled by the engine at
// each stack iteration to shorten shutdown on large sub-problems.
func (p *pool) work(id int) {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.cancel.Load() {
			p.cond.Wait()
		}
		if p.cancel.Load() {
			p.mu.Unlock()
			log.Debugf("worker %d: cancelled", id)
			return
		}
		atomic.AddInt64(&p.idle, -1)
		item := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		res := search(item, p.fork, p.cancel.Load)
		if res.Status == Sat {
			p.publish(res, id)
			return
		}
		if res.Status == Indet {
			// Cancelled mid-run; the next wait observes the flag.
			atomic.AddInt64(&p.idle, 1)
			continue
		}

		atomic.AddInt64(&p.idle, 1)
		p.mu.Lock()
		// The idle counter must be read under the queue mutex: otherwise a
		// still-busy worker could enqueue a sibling between the read and
		// the decision to terminate.
		if atomic.LoadInt64(&p.idle) == p.workers && len(p.queue) == 0 {
			p.cancel.Store(true)
			p.cond.Broadcast()
			p.mu.Unlock()
			log.Debugf("worker %d: search space exhausted", id)
			return
		}
		p.mu.Unlock()
	}
}

// fork publishes a branch sibling to the shared queue and wakes one waiter.
func (p *pool) fork(sibling *CNF) {
	p.mu.Lock()
	p.queue = append(p.queue, sibling)
	p.cond.Signal()
	p.mu.Unlock()
}

// publish installs a Sat result exactly once and broadcasts cancellation so
// every waiting worker wakes to observe it. Later Sat results are
// discarded.
func (p *pool) publish(res Result, id int) {
	p.resMu.Lock()
	if !p.published {
		p.published = true
		p.result = res
		log.Debugf("worker %d: found a model", id)
	}
	p.resMu.Unlock()

	p.mu.Lock()
	p.cancel.Store(true)
	p.cond.Broadcast()
	p.mu.Unlock()
}
