package depgraph

import (
	"slices"
	"testing"
)

func TestBuildReverseIndex_EdgeInversion(t *testing.T) {
	index := BuildReverseIndex(letterGraph())

	cases := map[string][]string{
		"B": {"A"},
		"C": {"A"},
		"D": {"B"},
		"E": {"B"},
		"F": {"C"},
		"G": {"C"},
		"H": {"D", "E"},
		"I": {"E", "G"},
	}
	for pkg, want := range cases {
		got, ok := index.EdgesOf(pkg)
		if !ok {
			t.Errorf("index missing %s", pkg)
			continue
		}
		if !slices.Equal(got, want) {
			t.Errorf("index[%s] = %v, want %v", pkg, got, want)
		}
	}

	// A has no dependents and must not appear as a key.
	if index.Has("A") {
		t.Error("index contains A, which has no dependents")
	}
}

func TestBuildReverseIndex_Empty(t *testing.T) {
	index := BuildReverseIndex(New())
	if index.Len() != 0 {
		t.Errorf("index has %d packages, want 0", index.Len())
	}
}

// Re-reversing a reverse index must reconstruct the original edge set,
// though not necessarily its ordering.
func TestBuildReverseIndex_Involution(t *testing.T) {
	g := letterGraph()
	doubled := BuildReverseIndex(BuildReverseIndex(g))

	for _, pkg := range g.Packages() {
		deps, _ := g.EdgesOf(pkg)
		back, _ := doubled.EdgesOf(pkg)
		for _, dep := range deps {
			if !slices.Contains(back, dep) {
				t.Errorf("edge %s -> %s lost after double reversal", pkg, dep)
			}
		}
	}
	if doubled.EdgeCount() != g.EdgeCount() {
		t.Errorf("double reversal has %d edges, want %d", doubled.EdgeCount(), g.EdgeCount())
	}
}

func TestResolveReverse_Closure(t *testing.T) {
	index := BuildReverseIndex(letterGraph())

	closure, err := ResolveReverse(index, "H")
	if err != nil {
		t.Fatalf("ResolveReverse() error = %v", err)
	}

	// H is required by D and E, which are both required by B, which is
	// required by A.
	for _, pkg := range []string{"H", "D", "E", "B", "A"} {
		if !closure.Has(pkg) {
			t.Errorf("reverse closure missing %s", pkg)
		}
	}
	deps, _ := closure.EdgesOf("H")
	if !slices.Equal(deps, []string{"D", "E"}) {
		t.Errorf("reverse closure[H] = %v, want [D E]", deps)
	}
}

func TestResolveReverse_CycleDetected(t *testing.T) {
	g := New()
	g.Set("X", []string{"Y"})
	g.Set("Y", []string{"X"})

	index := BuildReverseIndex(g)
	_, err := ResolveReverse(index, "X")
	if _, ok := err.(*CycleError); !ok {
		t.Fatalf("ResolveReverse() error = %v, want *CycleError", err)
	}
}

func TestDirectDependents(t *testing.T) {
	index := BuildReverseIndex(letterGraph())

	got := DirectDependents(index, "H")
	if want := []string{"D", "E"}; !slices.Equal(got, want) {
		t.Errorf("DirectDependents(H) = %v, want %v", got, want)
	}
}

func TestDirectDependents_ExcludesRootUnderCycle(t *testing.T) {
	g := New()
	g.Set("Z", []string{"Z"})

	index := BuildReverseIndex(g)
	if got := DirectDependents(index, "Z"); len(got) != 0 {
		t.Errorf("DirectDependents(Z) = %v, want empty", got)
	}
}

func TestDirectDependents_NoDependents(t *testing.T) {
	index := BuildReverseIndex(letterGraph())
	if got := DirectDependents(index, "A"); len(got) != 0 {
		t.Errorf("DirectDependents(A) = %v, want empty", got)
	}
}
