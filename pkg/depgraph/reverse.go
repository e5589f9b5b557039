package depgraph

import "slices"

// BuildReverseIndex inverts src: for every forward edge (pkg, dep), pkg is
// appended to the index entry for dep. Packages and their dependency lists
// are visited in stored order, so the per-key dependent lists preserve the
// order edges were discovered. An empty graph yields an empty index.
//
// The index is rebuilt on every call; reverse adjacency is derived data and
// is never cached across invocations.
func BuildReverseIndex(src Source) *Graph {
	index := New()
	for _, pkg := range src.Packages() {
		deps, _ := src.EdgesOf(pkg)
		for _, dep := range deps {
			index.appendEdge(dep, pkg)
		}
	}
	return index
}

// ResolveReverse walks a reverse index from root, producing the reverse
// closure: every package that transitively depends on root, mapped to the
// dependents observed for it. The traversal and cycle contract are those of
// [Resolve]; only the graph being walked differs.
func ResolveReverse(index Source, root string) (*Graph, error) {
	return Resolve(index, root)
}

// DirectDependents returns the packages that directly depend on root,
// collected breadth-first from the one-hop frontier of the reverse index.
// Root itself is excluded even when a cycle would reintroduce it, and
// duplicates collapse to a single entry. The result is sorted.
func DirectDependents(index Source, root string) []string {
	queue := []string{root}
	seen := make(map[string]bool)
	var dependents []string

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		deps, _ := index.EdgesOf(node)
		for _, dep := range deps {
			if dep == root || seen[dep] {
				continue
			}
			seen[dep] = true
			dependents = append(dependents, dep)
		}
	}

	slices.Sort(dependents)
	return dependents
}
