// Package dijkstra implements Dijkstra's shortest-path algorithm on a dense
// cost matrix.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: a shorter path pushes a new queue
//     entry and older entries for the same node become stale.
//   - A node's record is finalized by its first extraction; stale extractions
//     never overwrite it.
//   - Stale extractions still relax their neighbours unless
//     WithSkipStaleRelaxation is set. This never changes the result because
//     every relaxation is gated by the best cost known so far.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densepath/matrix"
	"github.com/katalvlaran/densepath/pq"
)

// infinity marks a node with no known path yet.
const infinity = math.MaxInt64

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns a Result whose records are indexed by node id; unreached nodes keep
// an absent cost and predecessor. The source is its own predecessor.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in 0..g.Order()-1 (ErrVertexNotFound).
//
// Weights are non-negative by construction of matrix.Cost.
//
// Complexity:
//
//   - Time:  O(V² + E log E); every extraction scans a full matrix row.
//   - Space: O(V + E) for the table and up to E stale queue entries.
func Dijkstra(g *matrix.Cost, source int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.Order()
	if source < 0 || source >= n {
		return Result{}, fmt.Errorf("%w: source %d, order %d", ErrVertexNotFound, source, n)
	}

	r := &runner{
		g:       g,
		options: cfg,
		records: make([]PathRecord, n),
		best:    make([]int64, n),
		pq:      pq.New[step, int64](),
	}
	defer r.pq.Destroy()

	if err := r.init(source); err != nil {
		return Result{}, err
	}
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return Result{Source: source, records: r.records, stats: r.stats}, nil
}

// step is the queue payload: one candidate way of reaching node.
type step struct {
	node int
	pred int
	cost int64
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *matrix.Cost
	options Options
	records []PathRecord // result table, finalized once per node
	best    []int64      // best cost discovered so far; gates relaxation
	pq      *pq.Queue[step, int64]
	stats   Stats
}

// init marks every node unvisited and queues the source at cost 0.
func (r *runner) init(source int) error {
	for i := range r.records {
		r.records[i] = PathRecord{Node: i, cost: infinity, pred: -1}
		r.best[i] = infinity
	}
	r.best[source] = 0

	return r.push(step{node: source, pred: source, cost: 0})
}

// process drains the queue, finalizing each node on its first extraction.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		cur, err := r.pq.RemoveFirst()
		if err != nil {
			return fmt.Errorf("dijkstra: extract: %w", err)
		}
		r.stats.Pops++

		rec := &r.records[cur.node]
		if !rec.finalized {
			rec.cost = cur.cost
			rec.pred = cur.pred
			rec.finalized = true
			r.options.OnFinalize(*rec)
		} else {
			r.stats.Stale++
			if r.options.SkipStaleRelaxation {
				continue
			}
		}

		if err = r.relax(cur); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every edge leaving cur.node and queues each strict improvement.
func (r *runner) relax(cur step) error {
	r.stats.Scans++
	var relaxErr error
	err := r.g.Neighbors(cur.node, func(v int, w int64) {
		if relaxErr != nil {
			return
		}
		// A sum equal to infinity would be indistinguishable from "no path".
		if w >= infinity-cur.cost {
			relaxErr = fmt.Errorf("%w: %d + %d at edge %d→%d", ErrCostOverflow, cur.cost, w, cur.node, v)
			return
		}
		candidate := cur.cost + w
		if candidate >= r.best[v] {
			return
		}
		r.best[v] = candidate
		relaxErr = r.push(step{node: v, pred: cur.node, cost: candidate})
	})
	if err != nil {
		return fmt.Errorf("dijkstra: neighbours of %d: %w", cur.node, err)
	}

	return relaxErr
}

func (r *runner) push(s step) error {
	if err := r.pq.Insert(s, s.cost); err != nil {
		return fmt.Errorf("dijkstra: insert %d: %w", s.node, err)
	}
	r.stats.Pushes++

	return nil
}
