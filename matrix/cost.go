// SPDX-License-Identifier: MIT

// Package matrix - Cost storage (row-major) & safe accessors.
//
// Purpose:
//   - Flat row-major buffers with the explicit index formula i*n + j.
//   - Edge presence is tracked in its own buffer; the weight buffer alone never
//     decides whether an edge exists.
//   - Public accessors return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewCost: O(n²) zero-init; SetEdge/RemoveEdge/Edge: O(1); Neighbors: O(n).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ctxSet    = "SetEdge"
	ctxRemove = "RemoveEdge"
	ctxEdge   = "Edge"
	ctxNeigh  = "Neighbors"
)

// MaxOrder is the largest node count NewCost accepts. A dense matrix of this
// order already needs about 2.4 GiB; the bound also keeps n*n far from int
// overflow on 32-bit platforms.
const MaxOrder = 1 << 14

// absentCell is printed by String for cells with no edge.
const absentCell = "."

func costErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Cost.%s(%d,%d): %w", method, row, col, err)
}

// Cost is a directed n×n cost matrix.
type Cost struct {
	n       int
	weights []int64 // row-major, len n*n
	present []bool  // row-major, len n*n; true iff an edge from row to col exists
	edges   int     // number of present cells
}

var _ fmt.Stringer = (*Cost)(nil)

// NewCost creates an n-node matrix without edges. n must be in 1..MaxOrder.
func NewCost(n int) (*Cost, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if n > MaxOrder {
		return nil, fmt.Errorf("order %d exceeds %d: %w", n, MaxOrder, ErrInvalidDimensions)
	}

	return &Cost{
		n:       n,
		weights: make([]int64, n*n),
		present: make([]bool, n*n),
	}, nil
}

// FromDense builds a Cost from a square table using the legacy convention:
// a positive entry is an edge weight, anything <= 0 means "no edge".
func FromDense(table [][]int64) (*Cost, error) {
	m, err := NewCost(len(table))
	if err != nil {
		return nil, err
	}
	for i, row := range table {
		if len(row) != m.n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), m.n, ErrNonSquare)
		}
		for j, w := range row {
			if w > 0 {
				m.put(i, j, w)
			}
		}
	}

	return m, nil
}

// Order returns the number of nodes.
func (m *Cost) Order() int {
	if m == nil {
		return 0
	}

	return m.n
}

// EdgeCount returns the number of present edges.
func (m *Cost) EdgeCount() int {
	if m == nil {
		return 0
	}

	return m.edges
}

// SetEdge adds or overwrites the edge from→to with weight w (w >= 0).
func (m *Cost) SetEdge(from, to int, w int64) error {
	if err := m.check(ctxSet, from, to); err != nil {
		return err
	}
	if w < 0 {
		return costErrorf(ctxSet, from, to, fmt.Errorf("%w: %d", ErrNegativeWeight, w))
	}
	m.put(from, to, w)

	return nil
}

// RemoveEdge deletes the edge from→to if present.
func (m *Cost) RemoveEdge(from, to int) error {
	if err := m.check(ctxRemove, from, to); err != nil {
		return err
	}
	k := from*m.n + to
	if m.present[k] {
		m.present[k] = false
		m.weights[k] = 0
		m.edges--
	}

	return nil
}

// Edge returns the weight of from→to and whether the edge exists.
func (m *Cost) Edge(from, to int) (int64, bool, error) {
	if err := m.check(ctxEdge, from, to); err != nil {
		return 0, false, err
	}
	k := from*m.n + to

	return m.weights[k], m.present[k], nil
}

// Neighbors calls fn for every edge leaving u, in ascending column order.
func (m *Cost) Neighbors(u int, fn func(v int, w int64)) error {
	if err := m.check(ctxNeigh, u, 0); err != nil {
		return err
	}
	row := u * m.n
	for v := 0; v < m.n; v++ {
		if m.present[row+v] {
			fn(v, m.weights[row+v])
		}
	}

	return nil
}

// String renders one row per line; absent edges print as ".".
func (m *Cost) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			k := i*m.n + j
			if m.present[k] {
				sb.WriteString(strconv.FormatInt(m.weights[k], 10))
			} else {
				sb.WriteString(absentCell)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (m *Cost) put(from, to int, w int64) {
	k := from*m.n + to
	if !m.present[k] {
		m.present[k] = true
		m.edges++
	}
	m.weights[k] = w
}

func (m *Cost) check(method string, row, col int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return costErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}
