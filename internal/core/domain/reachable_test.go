package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/relock/internal/core/domain"
)

// buildFlatTree wires a root whose top level holds the given entries, with
// owners set as the tree builder would.
func buildFlatTree(entries map[string]*domain.Entry) *domain.Entry {
	root := domain.NewTreeRoot()
	for name, e := range entries {
		root.Dependencies[name] = e
		e.SetOwner(root)
	}
	return root
}

func TestCollectReachable_FollowsRequires(t *testing.T) {
	a := &domain.Entry{Version: "1.0.0", Requires: map[string]string{"b": "^1.0.0"}}
	b := &domain.Entry{Version: "1.0.0"}
	c := &domain.Entry{Version: "1.0.0"}
	root := buildFlatTree(map[string]*domain.Entry{"a": a, "b": b, "c": c})

	reachable, err := domain.CollectReachable(root, []string{"a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reachable[a] || !reachable[b] {
		t.Error("expected a and b to be reachable")
	}
	if reachable[c] {
		t.Error("expected c to be unreachable")
	}
}

func TestCollectReachable_MutualRequirementsTerminate(t *testing.T) {
	a := &domain.Entry{Version: "1.0.0", Requires: map[string]string{"b": "*"}}
	b := &domain.Entry{Version: "1.0.0", Requires: map[string]string{"a": "*"}}
	root := buildFlatTree(map[string]*domain.Entry{"a": a, "b": b})

	reachable, err := domain.CollectReachable(root, []string{"a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reachable[a] || !reachable[b] {
		t.Error("expected both mutually requiring entries to be reachable")
	}
}

func TestCollectReachable_SkipsUnresolvableSeeds(t *testing.T) {
	// A declared category can name packages that were never installed, for
	// example an optional dependency skipped on this platform. Those seeds
	// are ignored rather than failing the pass.
	a := &domain.Entry{Version: "1.0.0"}
	root := buildFlatTree(map[string]*domain.Entry{"a": a})

	reachable, err := domain.CollectReachable(root, []string{"a", "never-installed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reachable[a] {
		t.Error("expected a to be reachable")
	}
	if len(reachable) != 1 {
		t.Errorf("expected exactly one reachable entry, got %d", len(reachable))
	}
}

func TestCollectReachable_FailsOnBrokenInnerEdge(t *testing.T) {
	// Below the seeds an unresolvable requirement means the tree was built
	// wrong and must propagate.
	a := &domain.Entry{Version: "1.0.0", Requires: map[string]string{"missing": "*"}}
	root := buildFlatTree(map[string]*domain.Entry{"a": a})

	_, err := domain.CollectReachable(root, []string{"a"})
	if err == nil {
		t.Fatal("expected error for broken inner edge, got nil")
	}
	if !errors.Is(err, domain.ErrScopeExhausted) {
		t.Errorf("expected ErrScopeExhausted, got %v", err)
	}
}
