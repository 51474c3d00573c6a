// Package dijkstra defines result types and configuration options
// for the lazy-deletion shortest-path engine.
//
// Options:
//
//	– OnFinalize:          hook invoked once per node, at the moment its record is finalized.
//	– SkipStaleRelaxation: skip the neighbour scan for stale extractions (off by default).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided cost matrix is nil.
//	– ErrVertexNotFound  if the source (or a PathTo target) is outside 0..n-1.
//	– ErrUnreachable     if PathTo is asked for a node the source cannot reach.
//	– ErrCostOverflow    if a path cost would reach math.MaxInt64.
package dijkstra

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *matrix.Cost was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a node id outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that no path from the source reaches a node.
	ErrUnreachable = errors.New("dijkstra: vertex is unreachable")

	// ErrCostOverflow indicates that a path cost exceeded the int64 range.
	ErrCostOverflow = errors.New("dijkstra: path cost overflows int64")
)

// PathRecord is the outcome for one node. Until a record is finalized its
// cost and predecessor are absent; Cost and Predecessor report that through
// their second result.
type PathRecord struct {
	Node      int
	cost      int64
	pred      int
	finalized bool
}

// Cost returns the finalized shortest distance from the source, or false if
// the node was never reached.
func (r PathRecord) Cost() (int64, bool) {
	return r.cost, r.finalized
}

// Predecessor returns the node preceding this one on a shortest path, or
// false if the node was never reached. The source is its own predecessor.
func (r PathRecord) Predecessor() (int, bool) {
	return r.pred, r.finalized
}

// Reachable reports whether the record was finalized.
func (r PathRecord) Reachable() bool { return r.finalized }

// String renders the record as "node: cost via pred" or "node: unreachable".
func (r PathRecord) String() string {
	if !r.finalized {
		return fmt.Sprintf("%d: unreachable", r.Node)
	}

	return fmt.Sprintf("%d: %d via %d", r.Node, r.cost, r.pred)
}

// Stats counts the queue traffic of one run.
type Stats struct {
	Pushes int // entries inserted, including the source
	Pops   int // entries extracted
	Stale  int // extractions for already-finalized nodes
	Scans  int // neighbour rows scanned
}

// Options configures the behavior of the engine.
type Options struct {
	// OnFinalize is called with each record right after it is finalized.
	OnFinalize func(PathRecord)

	// SkipStaleRelaxation skips neighbour relaxation for stale extractions.
	// Results are identical either way; only Stats.Scans changes.
	SkipStaleRelaxation bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithOnFinalize registers a finalization hook. A nil fn is ignored.
func WithOnFinalize(fn func(PathRecord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithSkipStaleRelaxation stops stale extractions from rescanning their row.
func WithSkipStaleRelaxation() Option {
	return func(o *Options) {
		o.SkipStaleRelaxation = true
	}
}

// DefaultOptions returns a no-op hook; stale extractions still relax their
// neighbours.
func DefaultOptions() Options {
	return Options{
		OnFinalize:          func(PathRecord) {},
		SkipStaleRelaxation: false,
	}
}

// Result is the finalized path table of a single run.
type Result struct {
	Source  int
	records []PathRecord
	stats   Stats
}

// Records returns a copy of the table, indexed by node id.
func (r Result) Records() []PathRecord {
	out := make([]PathRecord, len(r.records))
	copy(out, r.records)

	return out
}

// Record returns the entry for node.
func (r Result) Record(node int) (PathRecord, error) {
	if node < 0 || node >= len(r.records) {
		return PathRecord{}, fmt.Errorf("%w: %d", ErrVertexNotFound, node)
	}

	return r.records[node], nil
}

// Stats returns the queue counters collected during the run.
func (r Result) Stats() Stats { return r.stats }

// PathTo reconstructs the node sequence from the source to target.
func (r Result) PathTo(target int) ([]int, error) {
	rec, err := r.Record(target)
	if err != nil {
		return nil, err
	}
	if !rec.finalized {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, target)
	}

	path := []int{target}
	for cur := target; cur != r.Source; {
		cur = r.records[cur].pred
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
