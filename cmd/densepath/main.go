// Command densepath loads a weighted directed graph from an edge-list file,
// computes shortest paths from one source node and prints the table.
//
// Usage:
//
//	densepath [-file airports.dat] [-source 0] [-print-matrix] [-verbose]
//
// Output, one line per node:
//
//	Node 0: Cost = 0, Previous = 0
//	Node 1: Cost = 2, Previous = 2
//	Node 4: Cost = unreachable, Previous = none
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/densepath/dijkstra"
	"github.com/katalvlaran/densepath/graphio"
)

const defaultDataFile = "airports.dat"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			os.Exit(1)
		}
	}
}

// run parses args, executes one query and writes the table to stdout.
// Diagnostics go to stderr through slog.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("densepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", defaultDataFile, "edge-list file: header `n_nodes n_edges`, then `tail head weight` lines")
	source := fs.Int("source", 0, "source node id")
	printMatrix := fs.Bool("print-matrix", false, "print the loaded cost matrix before the results")
	verbose := fs.Bool("verbose", false, "log every node finalization")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := graphio.Load(*file)
	if err != nil {
		logger.Error("load graph", "file", *file, "err", err)
		return err
	}
	logger.Debug("graph loaded", "file", *file, "nodes", g.Order(), "edges", g.EdgeCount())

	if *printMatrix {
		if _, err = fmt.Fprint(stdout, g.String()); err != nil {
			return err
		}
	}

	res, err := dijkstra.Dijkstra(g, *source, dijkstra.WithOnFinalize(func(r dijkstra.PathRecord) {
		c, _ := r.Cost()
		p, _ := r.Predecessor()
		logger.Debug("finalized", "node", r.Node, "cost", c, "prev", p)
	}))
	if err != nil {
		logger.Error("shortest paths", "source", *source, "err", err)
		return err
	}
	st := res.Stats()
	logger.Debug("done", "pushes", st.Pushes, "pops", st.Pops, "stale", st.Stale)

	if err = graphio.Render(stdout, res); err != nil {
		logger.Error("render", "err", err)
		return err
	}

	return nil
}
