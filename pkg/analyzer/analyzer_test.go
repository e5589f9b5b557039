package analyzer

import (
	"slices"
	"strings"
	"testing"

	"github.com/depscope/depscope/pkg/depgraph"
	"github.com/depscope/depscope/pkg/errors"
)

func TestRun_Forward(t *testing.T) {
	req := Request{Package: "app-core", ASCIITree: true, GraphExport: true}

	rep, err := Run(req, SourceFor(req))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if rep.Closure == nil || !rep.Closure.Has("app-core") {
		t.Fatal("report closure missing the requested package")
	}
	if !slices.Contains(rep.Transitive, "certstore") {
		t.Errorf("Transitive = %v, missing deep dependency certstore", rep.Transitive)
	}
	if slices.Contains(rep.Transitive, "app-core") {
		t.Error("Transitive contains the root package")
	}
	if !strings.HasPrefix(rep.Tree, "app-core\n") {
		t.Errorf("Tree does not start with the root line: %q", rep.Tree)
	}
	if !strings.Contains(rep.DOT, "rankdir=TB") {
		t.Error("DOT missing forward orientation")
	}
	if rep.ExportFile != "app-core_forward.dot" {
		t.Errorf("ExportFile = %q, want %q", rep.ExportFile, "app-core_forward.dot")
	}
}

func TestRun_Reverse(t *testing.T) {
	req := Request{Package: "strutil", Reverse: true, GraphExport: true}

	rep, err := Run(req, SourceFor(req))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"settings", "web-client"}
	if !slices.Equal(rep.Dependents, want) {
		t.Errorf("Dependents = %v, want %v", rep.Dependents, want)
	}
	if !strings.Contains(rep.DOT, "rankdir=BT") {
		t.Error("DOT missing reverse orientation")
	}
	if rep.ExportFile != "strutil_reverse.dot" {
		t.Errorf("ExportFile = %q, want %q", rep.ExportFile, "strutil_reverse.dot")
	}
}

func TestRun_CycleKeepsSummary(t *testing.T) {
	req := Request{Package: "ring-core", TestMode: true}

	rep, err := Run(req, SourceFor(req))
	cycleErr, ok := err.(*depgraph.CycleError)
	if !ok {
		t.Fatalf("Run() error = %v, want *CycleError", err)
	}
	if want := "Circular dependency: ring-core -> ring-net -> ring-util -> ring-core"; cycleErr.Error() != want {
		t.Errorf("CycleError = %q, want %q", cycleErr.Error(), want)
	}

	// The breadth-first summary is cycle tolerant and must survive.
	want := []string{"ring-net", "ring-util"}
	if !slices.Equal(rep.Transitive, want) {
		t.Errorf("Transitive = %v, want %v", rep.Transitive, want)
	}
	if rep.Closure != nil {
		t.Error("report carries a closure despite the cycle error")
	}
}

func TestRun_EmptyPackage(t *testing.T) {
	_, err := Run(Request{}, depgraph.New())
	if !errors.Is(err, errors.ErrCodeInvalidPackage) {
		t.Errorf("Run() error = %v, want INVALID_PACKAGE", err)
	}
}

func TestRun_UnknownPackage(t *testing.T) {
	req := Request{Package: "ghost", ASCIITree: true}

	rep, err := Run(req, SourceFor(req))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(rep.Transitive) != 0 {
		t.Errorf("Transitive = %v, want empty for unknown package", rep.Transitive)
	}
	if rep.Tree != "ghost\n" {
		t.Errorf("Tree = %q, want degenerate one-line tree", rep.Tree)
	}
}

func TestSourceFor(t *testing.T) {
	normal := SourceFor(Request{})
	if !normal.(*depgraph.Graph).Has("app-core") {
		t.Error("default source is not the acyclic sample")
	}
	cyclic := SourceFor(Request{TestMode: true})
	if !cyclic.(*depgraph.Graph).Has("ring-core") {
		t.Error("test-mode source is not the cyclic sample")
	}
}
