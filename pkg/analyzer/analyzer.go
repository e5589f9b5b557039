// Package analyzer glues the graph engine to its renderers: it turns an
// analysis request into a report the CLI can print and export.
package analyzer

import (
	"github.com/depscope/depscope/pkg/depgraph"
	"github.com/depscope/depscope/pkg/errors"
	"github.com/depscope/depscope/pkg/render"
	"github.com/depscope/depscope/pkg/render/nodelink"
)

// Request describes one analysis run, as supplied by the configuration layer.
type Request struct {
	Package     string // root package, non-empty
	TestMode    bool   // select the cyclic sample source instead of the acyclic one
	Reverse     bool   // walk dependents instead of dependencies
	ASCIITree   bool   // render the closure as an ASCII tree
	GraphExport bool   // produce a DOT description and export filename
}

// Report holds everything a single run produced. When Run returns a cycle
// error the report still carries the cycle-tolerant Transitive summary;
// the remaining fields are unset.
type Report struct {
	Closure    *depgraph.Graph    // closure graph for the requested direction
	Transitive []string           // sorted transitive dependencies of the package
	Dependents []string           // sorted direct dependents; reverse mode only
	Tree       string             // ASCII tree, when requested
	DOT        string             // DOT description, when requested
	ExportFile string             // suggested export path, when requested
	Direction  nodelink.Direction // direction the closure was walked in
}

// SourceFor returns the built-in graph source selected by the request.
// Both modes resolve to fixed static data; the resolvers never distinguish
// them.
func SourceFor(req Request) depgraph.Source {
	if req.TestMode {
		return depgraph.CyclicSample()
	}
	return depgraph.Sample()
}

// Run analyzes req.Package over src. The transitive summary is computed
// first so it survives a later cycle error; closure resolution, tree
// rendering and DOT generation follow. Run performs no I/O: saving the
// export text is the caller's side effect.
func Run(req Request, src depgraph.Source) (*Report, error) {
	if req.Package == "" {
		return nil, errors.New(errors.ErrCodeInvalidPackage, "package name must not be empty")
	}

	rep := &Report{
		Direction:  nodelink.Forward,
		Transitive: depgraph.TransitiveDependencies(src, req.Package),
	}

	var closure *depgraph.Graph
	var err error
	if req.Reverse {
		rep.Direction = nodelink.Reverse
		index := depgraph.BuildReverseIndex(src)
		rep.Dependents = depgraph.DirectDependents(index, req.Package)
		closure, err = depgraph.ResolveReverse(index, req.Package)
	} else {
		closure, err = depgraph.Resolve(src, req.Package)
	}
	if err != nil {
		return rep, err
	}
	rep.Closure = closure

	if req.ASCIITree {
		rep.Tree = render.Tree(closure, req.Package)
	}
	if req.GraphExport {
		rep.DOT = nodelink.ToDOT(closure, req.Package, rep.Direction)
		rep.ExportFile = nodelink.Filename(req.Package, rep.Direction)
	}
	return rep, nil
}
