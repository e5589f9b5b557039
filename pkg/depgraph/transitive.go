package depgraph

import "slices"

// TransitiveDependencies returns every package reachable from root via one
// or more dependency edges, excluding root itself, sorted. The walk is
// breadth-first with a global visited set, so it terminates on cyclic graphs
// instead of failing: visited packages are simply not re-enqueued.
//
// If root is not a key of src, the result is empty.
func TransitiveDependencies(src Source, root string) []string {
	if _, ok := src.EdgesOf(root); !ok {
		return nil
	}

	visited := map[string]bool{root: true}
	queue := []string{root}
	var reached []string

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		deps, _ := src.EdgesOf(node)
		for _, dep := range deps {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			reached = append(reached, dep)
			queue = append(queue, dep)
		}
	}

	slices.Sort(reached)
	return reached
}
