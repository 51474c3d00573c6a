// Package dijkstra computes single-source shortest paths over a dense,
// directed matrix.Cost with non-negative edge weights.
//
// Overview:
//
//   - Every node starts Unvisited (cost absent, predecessor absent).
//   - The source is queued at cost 0 with itself as predecessor.
//   - Each extraction from the min-heap (package pq) finalizes its node if that node
//     has no record yet; later extractions for the same node are stale and ignored.
//   - Every extraction scans the node's matrix row and queues a new entry for each
//     neighbour whose best-known cost strictly improves ("lazy deletion": the heap is
//     never decrease-keyed or purged).
//   - The run ends when the queue is empty; unreached nodes keep an absent cost.
//
// Per-node state machine:
//
//	Unvisited ──(first extraction)──▶ Finalized(cost, predecessor)
//
// Exactly one transition per node; a finalized record is immutable.
//
// Performance and complexity:
//
//   - Time:  O(V² + E log E). The dense row scan dominates on small graphs.
//   - Space: O(V + E); up to E stale entries may sit in the queue.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       the cost matrix is nil.
//   - ErrVertexNotFound: the source is not a node of the matrix.
//   - ErrCostOverflow:   a path cost would reach or exceed math.MaxInt64.
//   - ErrUnreachable:    Result.PathTo on a node the source never reached.
//
// API reference:
//
//	func Dijkstra(g *matrix.Cost, source int, opts ...Option) (Result, error)
//
//	  - opts: WithOnFinalize(fn), WithSkipStaleRelaxation().
//	  - Result.Records(): one PathRecord per node, indexed by node id.
//	  - Result.PathTo(t): node sequence source → t.
//	  - Result.Stats():   push/pop/stale counters.
//
// Thread safety:
//
//   - Each call owns its queue and table. Concurrent calls on the same matrix are
//     safe as long as nobody mutates the matrix meanwhile.
package dijkstra
