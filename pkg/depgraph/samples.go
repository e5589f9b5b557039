package depgraph

// Sample returns the fixed dependency graph the analyzer operates on.
// The data is static by design: the tool never contacts a package
// repository. The graph includes a shared dependency (strutil) so diamond
// handling is visible in the output.
func Sample() *Graph {
	g := New()
	g.Set("app-core", []string{"web-client", "settings", "logfmt"})
	g.Set("web-client", []string{"urlparse", "tls-core", "strutil"})
	g.Set("settings", []string{"tomlread", "envread", "strutil"})
	g.Set("logfmt", []string{"term-colors"})
	g.Set("urlparse", nil)
	g.Set("tls-core", []string{"certstore"})
	g.Set("tomlread", nil)
	g.Set("envread", nil)
	g.Set("term-colors", nil)
	g.Set("certstore", nil)
	g.Set("strutil", nil)
	return g
}

// CyclicSample returns the fixed graph with a dependency cycle, used to
// exercise cycle detection.
func CyclicSample() *Graph {
	g := New()
	g.Set("ring-core", []string{"ring-net"})
	g.Set("ring-net", []string{"ring-util"})
	g.Set("ring-util", []string{"ring-core"})
	return g
}
