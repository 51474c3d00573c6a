// Package graphio reads cost matrices from the plain-text edge-list format
// and renders shortest-path tables.
//
// Input format (whitespace separated, one record per line):
//
//	<n_nodes> <n_edges>
//	<tail> <head> <weight>    (n_edges lines)
//
// Blank lines are ignored. Every listed edge is present, including weight 0;
// unlisted cells have no edge. Negative weights are rejected.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/densepath/dijkstra"
	"github.com/katalvlaran/densepath/matrix"
)

// ErrMalformed indicates missing, extra or non-numeric input.
var ErrMalformed = errors.New("graphio: malformed input")

// Load opens path and parses it with Parse.
func Load(path string) (*matrix.Cost, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse reads a header line followed by exactly n_edges edge lines.
func Parse(r io.Reader) (*matrix.Cost, error) {
	sc := bufio.NewScanner(r)
	line := 0

	// next returns the fields of the next non-blank line, or nil at EOF.
	next := func() ([]int64, error) {
		for sc.Scan() {
			line++
			fields := strings.Fields(sc.Text())
			if len(fields) == 0 {
				continue
			}
			nums := make([]int64, len(fields))
			for i, f := range fields {
				v, err := strconv.ParseInt(f, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %q: %w", line, f, ErrMalformed)
				}
				nums[i] = v
			}

			return nums, nil
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}

		return nil, nil
	}

	header, err := next()
	if err != nil {
		return nil, err
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("line %d: header needs <n_nodes> <n_edges>: %w", line, ErrMalformed)
	}
	nNodes, nEdges := header[0], header[1]
	if nEdges < 0 {
		return nil, fmt.Errorf("line %d: negative edge count %d: %w", line, nEdges, ErrMalformed)
	}
	if nNodes <= 0 || nNodes > matrix.MaxOrder {
		return nil, fmt.Errorf("line %d: node count %d outside 1..%d: %w", line, nNodes, matrix.MaxOrder, matrix.ErrInvalidDimensions)
	}

	g, err := matrix.NewCost(int(nNodes))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	for i := int64(0); i < nEdges; i++ {
		rec, err := next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("expected %d edges, found %d: %w", nEdges, i, ErrMalformed)
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("line %d: edge needs <tail> <head> <weight>: %w", line, ErrMalformed)
		}
		if err = g.SetEdge(int(rec[0]), int(rec[1]), rec[2]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	extra, err := next()
	if err != nil {
		return nil, err
	}
	if extra != nil {
		return nil, fmt.Errorf("line %d: data after %d edges: %w", line, nEdges, ErrMalformed)
	}

	return g, nil
}

// Render writes one line per node in node order:
//
//	Node <i>: Cost = <cost>, Previous = <pred>
//
// Unreached nodes print "unreachable" and "none".
func Render(w io.Writer, res dijkstra.Result) error {
	bw := bufio.NewWriter(w)
	for _, rec := range res.Records() {
		cost, prev := "unreachable", "none"
		if c, ok := rec.Cost(); ok {
			cost = strconv.FormatInt(c, 10)
		}
		if p, ok := rec.Predecessor(); ok {
			prev = strconv.Itoa(p)
		}
		if _, err := fmt.Fprintf(bw, "Node %d: Cost = %s, Previous = %s\n", rec.Node, cost, prev); err != nil {
			return fmt.Errorf("graphio: render: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: render: %w", err)
	}

	return nil
}
