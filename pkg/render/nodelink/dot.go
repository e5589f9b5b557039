package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/depscope/depscope/pkg/depgraph"
	"github.com/depscope/depscope/pkg/errors"
)

// Direction selects the orientation of an exported graph.
type Direction int

const (
	// Forward draws edges from a package toward its dependencies,
	// laid out top to bottom.
	Forward Direction = iota
	// Reverse draws edges from a dependent toward the package it requires,
	// laid out bottom to top, preserving the "what requires what" reading.
	Reverse
)

// String returns "forward" or "reverse", as used in export filenames.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// ToDOT converts a closure graph to Graphviz DOT format. The root package
// is styled distinctly from other nodes. One edge statement is emitted per
// (package, dependency) pair in closure iteration order, then per-package
// list order, without deduplication. For Forward closures the edge is drawn
// package→dependency; for Reverse closures (where each entry lists a
// package's dependents) it is drawn dependent→package.
func ToDOT(closure *depgraph.Graph, root string, dir Direction) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dependencies {\n")
	if dir == Reverse {
		buf.WriteString("  rankdir=BT;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	fmt.Fprintf(&buf, "  %q [fillcolor=lightblue];\n", root)
	buf.WriteString("\n")

	for _, pkg := range closure.Packages() {
		deps, _ := closure.EdgesOf(pkg)
		for _, dep := range deps {
			if dir == Reverse {
				fmt.Fprintf(&buf, "  %q -> %q;\n", dep, pkg)
			} else {
				fmt.Fprintf(&buf, "  %q -> %q;\n", pkg, dep)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Filename returns the conventional export path for a package and direction,
// e.g. "app-core_forward.dot".
func Filename(pkg string, dir Direction) string {
	return fmt.Sprintf("%s_%s.dot", pkg, dir)
}

// Save writes dot verbatim to path, overwriting any existing content.
// The write is a single whole-file operation: either the complete text is
// written or the call fails with an IO_ERROR.
func Save(dot, path string) error {
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
