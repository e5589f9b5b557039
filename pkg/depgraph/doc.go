// Package depgraph implements the dependency-graph engine: an ordered
// adjacency graph type, forward and reverse transitive closure with cycle
// detection, and a cycle-tolerant flat transitive set.
//
// All traversals operate over an immutable [Source] and build fresh state
// per call. The two built-in sources ([Sample], [CyclicSample]) are the
// tool's actual data; a repository-backed Source could be substituted
// without touching the resolvers.
package depgraph
