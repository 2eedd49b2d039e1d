// Package domain contains the core domain models and tree algorithms for
// lockfile reconstruction.
package domain

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Entry represents one resolved installation of a package, identified by the
// directory the installer placed it in. Two requirers of the same directory
// share a single Entry value.
type Entry struct {
	// Version is the installed semantic version, copied verbatim from the manifest.
	Version string

	// Integrity and Resolved are opaque installer metadata; empty when unknown.
	Integrity string
	Resolved  string

	// Requires maps dependency names to their declared version ranges. It only
	// contains names whose installation directory existed at build time.
	Requires map[string]string

	// Dev and Optional are derived after construction by the reachability
	// classifier. They are never inputs.
	Dev      bool
	Optional bool

	// Dependencies holds children that were physically nested under this entry
	// by the installer. Nil when this entry hosts no nested installs.
	Dependencies EntryDeps

	// Extra carries fields from a previously committed lockfile that this tool
	// does not compute. It is populated by the structural merge and appended
	// after the computed fields on serialization.
	Extra map[string]json.RawMessage

	// owner points at the entry whose Dependencies map structurally contains
	// this one. It is non-owning and only used for upward scope lookups.
	owner *Entry
}

// EntryDeps maps package names to their entries at one hoisting level.
type EntryDeps map[string]*Entry

// NewTreeRoot returns the synthetic container entry for a generation run. Its
// Dependencies map is the top level of the reconstructed tree.
func NewTreeRoot() *Entry {
	return &Entry{Dependencies: EntryDeps{}}
}

// SetOwner records the structural container of e. It is called exactly once
// per placement during tree construction.
func (e *Entry) SetOwner(owner *Entry) {
	e.owner = owner
}

// Owner returns the structural container of e, or nil for the tree root.
func (e *Entry) Owner() *Entry {
	return e.owner
}

// Names returns the package names in deps in lexicographic order.
func (deps EntryDeps) Names() []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON serializes the entry with a stable key order: version,
// integrity, resolved, requires, dev, optional, dependencies, then any
// preserved extra fields.
func (e Entry) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	if err := w.Field("version", e.Version); err != nil {
		return nil, err
	}
	if e.Integrity != "" {
		if err := w.Field("integrity", e.Integrity); err != nil {
			return nil, err
		}
	}
	if e.Resolved != "" {
		if err := w.Field("resolved", e.Resolved); err != nil {
			return nil, err
		}
	}
	if len(e.Requires) > 0 {
		if err := w.Field("requires", e.Requires); err != nil {
			return nil, err
		}
	}
	if e.Dev {
		if err := w.Field("dev", true); err != nil {
			return nil, err
		}
	}
	if e.Optional {
		if err := w.Field("optional", true); err != nil {
			return nil, err
		}
	}
	if len(e.Dependencies) > 0 {
		if err := w.Field("dependencies", e.Dependencies); err != nil {
			return nil, err
		}
	}
	if err := w.Extras(e.Extra, entryFields); err != nil {
		return nil, err
	}
	return w.Finish(), nil
}

// entryFields lists the entry keys this tool computes. A preserved extra
// field never overrides one of these.
var entryFields = map[string]bool{
	"version":      true,
	"integrity":    true,
	"resolved":     true,
	"requires":     true,
	"dev":          true,
	"optional":     true,
	"dependencies": true,
}

// objectWriter emits a JSON object with fields in insertion order. The
// standard library marshals struct fields in declaration order but offers no
// ordered map, and the lockfile format fixes its key order.
type objectWriter struct {
	buf bytes.Buffer
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.buf.WriteByte('{')
	return w
}

func (w *objectWriter) Field(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	w.Raw(key, data)
	return nil
}

func (w *objectWriter) Raw(key string, data json.RawMessage) {
	if w.buf.Len() > 1 {
		w.buf.WriteByte(',')
	}
	keyData, _ := json.Marshal(key)
	w.buf.Write(keyData)
	w.buf.WriteByte(':')
	w.buf.Write(data)
}

// Extras appends preserved fields in lexicographic order, skipping any key
// the computed set owns.
func (w *objectWriter) Extras(extra map[string]json.RawMessage, computed map[string]bool) error {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !computed[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.Raw(k, extra[k])
	}
	return nil
}

func (w *objectWriter) Finish() []byte {
	w.buf.WriteByte('}')
	return w.buf.Bytes()
}
