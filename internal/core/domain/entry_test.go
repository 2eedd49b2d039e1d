package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/relock/internal/core/domain"
)

func TestEntry_MarshalJSON_KeyOrder(t *testing.T) {
	e := domain.Entry{
		Version:   "1.2.3",
		Integrity: "sha512-abc",
		Resolved:  "https://registry.example/pkg-1.2.3.tgz",
		Requires:  map[string]string{"left": "^1.0.0"},
		Dev:       true,
		Optional:  true,
		Dependencies: domain.EntryDeps{
			"left": {Version: "1.0.4"},
		},
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"version":"1.2.3","integrity":"sha512-abc","resolved":"https://registry.example/pkg-1.2.3.tgz","requires":{"left":"^1.0.0"},"dev":true,"optional":true,"dependencies":{"left":{"version":"1.0.4"}}}`
	if string(data) != want {
		t.Errorf("unexpected serialization:\n got %s\nwant %s", data, want)
	}
}

func TestEntry_MarshalJSON_OmitsEmptyFields(t *testing.T) {
	e := domain.Entry{Version: "0.0.1"}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"version":"0.0.1"}`
	if string(data) != want {
		t.Errorf("unexpected serialization: got %s, want %s", data, want)
	}
}

func TestEntry_MarshalJSON_ExtraFieldsAppended(t *testing.T) {
	e := domain.Entry{
		Version: "2.0.0",
		Extra: map[string]json.RawMessage{
			"bundled": json.RawMessage(`true`),
			// Computed keys preserved from a prior document must not shadow
			// the freshly computed values.
			"version": json.RawMessage(`"9.9.9"`),
		},
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"version":"2.0.0","bundled":true}`
	if string(data) != want {
		t.Errorf("unexpected serialization: got %s, want %s", data, want)
	}
}

func TestEntryDeps_Names_Sorted(t *testing.T) {
	deps := domain.EntryDeps{
		"zeta":  {},
		"alpha": {},
		"mid":   {},
	}

	names := deps.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestEntry_OwnerRoundTrip(t *testing.T) {
	root := domain.NewTreeRoot()
	child := &domain.Entry{Version: "1.0.0"}
	child.SetOwner(root)

	if child.Owner() != root {
		t.Error("expected owner to be the tree root")
	}
	if root.Owner() != nil {
		t.Error("expected tree root to have no owner")
	}
}
