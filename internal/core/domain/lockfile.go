package domain

import "encoding/json"

// LockfileFormatVersion is the fixed format marker written into every
// generated document.
const LockfileFormatVersion = 1

// RawDocument is a previously committed lockfile decoded without
// interpretation. Field payloads stay raw so unrecognized data survives a
// merge byte for byte.
type RawDocument map[string]json.RawMessage

// Lockfile is the generated document for one package directory: the root
// manifest's identity plus the cleaned, classified dependency tree.
type Lockfile struct {
	// Name and Version come from the root manifest.
	Name    string
	Version string

	// LockfileVersion is always LockfileFormatVersion.
	LockfileVersion int

	// Requires is a fixed true flag in the serialized form.
	Requires bool

	// Dependencies is the top level of the reconstructed tree; nil when the
	// package has no installed dependencies.
	Dependencies EntryDeps

	// Extra carries top-level fields preserved from a prior document.
	Extra map[string]json.RawMessage
}

// MarshalJSON serializes the document with a stable key order: name, version,
// lockfileVersion, requires, dependencies, then preserved extra fields.
func (l Lockfile) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	if err := w.Field("name", l.Name); err != nil {
		return nil, err
	}
	if err := w.Field("version", l.Version); err != nil {
		return nil, err
	}
	if err := w.Field("lockfileVersion", l.LockfileVersion); err != nil {
		return nil, err
	}
	if err := w.Field("requires", l.Requires); err != nil {
		return nil, err
	}
	if len(l.Dependencies) > 0 {
		if err := w.Field("dependencies", l.Dependencies); err != nil {
			return nil, err
		}
	}
	if err := w.Extras(l.Extra, lockfileFields); err != nil {
		return nil, err
	}
	return w.Finish(), nil
}

// lockfileFields lists the top-level keys this tool computes.
var lockfileFields = map[string]bool{
	"name":            true,
	"version":         true,
	"lockfileVersion": true,
	"requires":        true,
	"dependencies":    true,
}
