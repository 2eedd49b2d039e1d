package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestResolveScope_NestedBeforeHoisted(t *testing.T) {
	root := domain.NewTreeRoot()
	hoisted := &domain.Entry{Version: "1.0.0"}
	root.Dependencies["dep"] = hoisted
	hoisted.SetOwner(root)

	pkg := &domain.Entry{
		Version: "2.0.0",
		Dependencies: domain.EntryDeps{
			"dep": {Version: "1.5.0"},
		},
	}
	root.Dependencies["pkg"] = pkg
	pkg.SetOwner(root)
	pkg.Dependencies["dep"].SetOwner(pkg)

	// The nested installation shadows the hoisted one.
	got, err := domain.ResolveScope(pkg, "dep")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != pkg.Dependencies["dep"] {
		t.Error("expected the nested entry, got the hoisted one")
	}

	// A name the package does not nest falls through to the root level.
	got, err = domain.ResolveScope(pkg, "pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != pkg {
		t.Error("expected root-level lookup to find pkg itself")
	}
}

func TestResolveScope_Exhausted(t *testing.T) {
	root := domain.NewTreeRoot()
	pkg := &domain.Entry{Version: "1.0.0"}
	root.Dependencies["pkg"] = pkg
	pkg.SetOwner(root)

	_, err := domain.ResolveScope(pkg, "ghost")
	if err == nil {
		t.Fatal("expected error for unresolvable requirement, got nil")
	}
	if !errors.Is(err, domain.ErrScopeExhausted) {
		t.Errorf("expected ErrScopeExhausted, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if dep, ok := meta["dependency"].(string); !ok || dep != "ghost" {
		t.Errorf("expected metadata dependency=ghost, got %v", meta["dependency"])
	}
}
