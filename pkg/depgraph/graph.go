package depgraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidPackage is returned by [Graph.Add] when the package name is
	// empty. All packages must have non-empty identifiers.
	ErrInvalidPackage = errors.New("package name must not be empty")

	// ErrDuplicatePackage is returned by [Graph.Add] when the package is
	// already present in the graph. Package names must be unique.
	ErrDuplicatePackage = errors.New("duplicate package")
)

// Source supplies an immutable directed dependency graph: each package maps
// to the ordered list of packages it directly depends on. A dependency may
// name a package that is not itself a key; such packages are leaves.
type Source interface {
	// EdgesOf returns the direct dependencies of pkg in stored order.
	// The second result is false when pkg is not a key of the graph.
	EdgesOf(pkg string) ([]string, bool)
	// Packages returns all package names in insertion order.
	Packages() []string
}

// Graph is an insertion-ordered adjacency mapping from a package to its
// direct dependencies. It backs both the fixed data sources and the closure
// graphs produced by traversals.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// use without external synchronization.
type Graph struct {
	order []string
	adj   map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// Add registers a package with its direct dependencies.
// Returns ErrInvalidPackage for an empty name or ErrDuplicatePackage if the
// package already exists. The dependency list is copied.
func (g *Graph) Add(pkg string, deps ...string) error {
	if pkg == "" {
		return ErrInvalidPackage
	}
	if _, exists := g.adj[pkg]; exists {
		return ErrDuplicatePackage
	}
	g.order = append(g.order, pkg)
	g.adj[pkg] = slices.Clone(deps)
	return nil
}

// Set registers a package, replacing its dependency list if the package is
// already present. First insertion determines the package's position in
// iteration order. The dependency list is copied.
func (g *Graph) Set(pkg string, deps []string) {
	if _, exists := g.adj[pkg]; !exists {
		g.order = append(g.order, pkg)
	}
	g.adj[pkg] = slices.Clone(deps)
}

// appendEdge appends dep to pkg's list, registering pkg on first use.
func (g *Graph) appendEdge(pkg, dep string) {
	if _, exists := g.adj[pkg]; !exists {
		g.order = append(g.order, pkg)
	}
	g.adj[pkg] = append(g.adj[pkg], dep)
}

// EdgesOf returns the direct dependencies of pkg in stored order.
// The returned slice should not be modified - use it as a read-only view.
func (g *Graph) EdgesOf(pkg string) ([]string, bool) {
	deps, ok := g.adj[pkg]
	return deps, ok
}

// Packages returns a copy of all package names in insertion order.
func (g *Graph) Packages() []string { return slices.Clone(g.order) }

// Has reports whether pkg is a key of the graph.
func (g *Graph) Has(pkg string) bool {
	_, ok := g.adj[pkg]
	return ok
}

// Len returns the number of packages in the graph.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the total number of (package, dependency) edges.
func (g *Graph) EdgeCount() int {
	var n int
	for _, deps := range g.adj {
		n += len(deps)
	}
	return n
}

// Equal reports whether two graphs hold the same packages in the same order
// with identical dependency lists.
func (g *Graph) Equal(other *Graph) bool {
	if !slices.Equal(g.order, other.order) {
		return false
	}
	for pkg, deps := range g.adj {
		if !slices.Equal(deps, other.adj[pkg]) {
			return false
		}
	}
	return true
}
