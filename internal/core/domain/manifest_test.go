package domain_test

import (
	"sort"
	"testing"

	"go.trai.ch/relock/internal/core/domain"
)

func TestManifest_ClassifierNameSets(t *testing.T) {
	m := &domain.Manifest{
		Dependencies:         map[string]string{"a": "*"},
		OptionalDependencies: map[string]string{"b": "*"},
		DevDependencies:      map[string]string{"c": "*"},
		PeerDependencies:     map[string]string{"d": "*"},
	}

	assertNames := func(t *testing.T, got, want []string) {
		t.Helper()
		sort.Strings(got)
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	assertNames(t, m.NonDevNames(), []string{"a", "b", "d"})
	assertNames(t, m.NonOptionalNames(), []string{"a", "c", "d"})
}

func TestManifest_NameSetsDeduplicate(t *testing.T) {
	m := &domain.Manifest{
		Dependencies:     map[string]string{"a": "^1.0.0"},
		PeerDependencies: map[string]string{"a": ">=1"},
	}

	names := m.NonDevNames()
	if len(names) != 1 || names[0] != "a" {
		t.Errorf("expected deduplicated [a], got %v", names)
	}
}
