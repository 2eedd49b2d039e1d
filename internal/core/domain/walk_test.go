package domain_test

import (
	"testing"

	"go.trai.ch/relock/internal/core/domain"
)

func TestWalkEntries_PostOrder(t *testing.T) {
	// b nests c; the walk must visit c before b, and names at each level in
	// lexicographic order.
	deps := domain.EntryDeps{
		"b": {
			Version: "1.0.0",
			Dependencies: domain.EntryDeps{
				"c": {Version: "2.0.0"},
			},
		},
		"a": {Version: "1.0.0"},
	}

	var visited []string
	domain.WalkEntries(deps, func(name string, e *domain.Entry) {
		visited = append(visited, name)
	})

	want := []string{"a", "c", "b"}
	if len(visited) != len(want) {
		t.Fatalf("expected %d visits, got %d: %v", len(want), len(visited), visited)
	}
	for i, name := range want {
		if visited[i] != name {
			t.Errorf("visit %d = %q, want %q (order: %v)", i, visited[i], name, visited)
		}
	}
}

func TestWalkEntries_MutationDuringWalk(t *testing.T) {
	// Clearing an emptied child map inside the callback must not disturb the
	// traversal; this is how the generator strips empty containers.
	deps := domain.EntryDeps{
		"outer": {
			Version: "1.0.0",
			Dependencies: domain.EntryDeps{
				"inner": {Version: "1.0.0", Dependencies: domain.EntryDeps{}},
			},
		},
	}

	domain.WalkEntries(deps, func(name string, e *domain.Entry) {
		if len(e.Dependencies) == 0 {
			e.Dependencies = nil
		}
	})

	inner := deps["outer"].Dependencies["inner"]
	if inner.Dependencies != nil {
		t.Error("expected inner's empty dependency map to be cleared")
	}
	if deps["outer"].Dependencies == nil {
		t.Error("expected outer's non-empty dependency map to survive")
	}
}
