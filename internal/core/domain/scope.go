package domain

import "go.trai.ch/zerr"

// ResolveScope finds the entry that satisfies a logical requirement of from.
// It looks name up in from's own nested Dependencies and, failing that, walks
// the owner chain outward, so a requirement is satisfied by the nearest
// enclosing container that physically provides that name. This mirrors how
// the installer's module resolution would have behaved at runtime.
//
// Exhausting the chain means the tree was built incorrectly and is reported
// as ErrScopeExhausted.
func ResolveScope(from *Entry, name string) (*Entry, error) {
	for e := from; e != nil; e = e.owner {
		if dep, ok := e.Dependencies[name]; ok {
			return dep, nil
		}
	}
	return nil, zerr.With(ErrScopeExhausted, "dependency", name)
}
