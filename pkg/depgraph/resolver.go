package depgraph

import (
	"slices"
	"strings"
)

// CycleError reports a package reached again while still on the active
// traversal path. Path holds the ancestor chain from the traversal root up
// to (and including) the last package expanded before the repeat.
type CycleError struct {
	Package string
	Path    []string
}

// Error renders the full cycle, ancestor chain followed by the repeating
// package: "Circular dependency: X -> Y -> Z -> X".
func (e *CycleError) Error() string {
	chain := append(slices.Clone(e.Path), e.Package)
	return "Circular dependency: " + strings.Join(chain, " -> ")
}

// Resolve walks src depth-first from root and returns the closure graph:
// every package reached, mapped to the dependency list observed for it.
// Packages absent from src are recorded as leaves with no dependencies.
// A package reached again while on the active ancestor path aborts the walk
// with a *CycleError; no partial closure is returned on that path.
//
// A package reached again after it was fully expanded (a shared, diamond
// dependency) is not re-expanded: its closure entry is replaced with an
// empty list at the second occurrence. Renderers therefore show a shared
// subtree only beneath its first parent.
//
// All traversal state is created per call; src is never mutated.
func Resolve(src Source, root string) (*Graph, error) {
	closure := New()
	if err := expand(src, root, nil, make(map[string]bool), closure); err != nil {
		return nil, err
	}
	return closure, nil
}

func expand(src Source, pkg string, path []string, visited map[string]bool, out *Graph) error {
	if slices.Contains(path, pkg) {
		return &CycleError{Package: pkg, Path: slices.Clone(path)}
	}
	if visited[pkg] {
		out.Set(pkg, nil)
		return nil
	}
	visited[pkg] = true

	deps, ok := src.EdgesOf(pkg)
	if !ok {
		deps = nil
	}
	out.Set(pkg, deps)

	path = append(path, pkg)
	for _, dep := range deps {
		if err := expand(src, dep, path, visited, out); err != nil {
			return err
		}
	}
	return nil
}
