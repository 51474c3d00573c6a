// Package densepath computes single-source shortest paths over small, densely
// connected weighted directed graphs.
//
// Under the hood, everything is organized in layers, each depending only on
// the one below:
//
//	dynarray/      — generic growable array (initial capacity 8, doubling, never shrinks)
//	pq/            — binary min-heap priority queue over dynarray
//	matrix/        — dense n×n cost matrix with explicit edge presence
//	dijkstra/      — lazy-deletion Dijkstra producing one PathRecord per node
//	graphio/       — edge-list parser and result renderer
//	cmd/densepath/ — command-line front end
//
// Quick ASCII example:
//
//	0 ──4──▶ 1 ──1──▶ 3
//	│        ▲
//	1        1
//	▼        │
//	2 ───────┘
//
// From 0 the cheapest way to 3 is 0→2→1→3 with cost 3.
//
//	go install github.com/katalvlaran/densepath/cmd/densepath@latest
package densepath
