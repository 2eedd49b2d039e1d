package lockfile

import (
	"encoding/json"

	"go.trai.ch/relock/internal/core/domain"
)

// Merge folds the prior document into next. Every prior field rides along as
// a preserved extra; fields the generator computes are shadowed at
// serialization time, so recomputed data always wins while unrecognized
// fields survive byte for byte. Preservation recurses into dependency
// entries that still exist in the new tree.
func (s *Store) Merge(prior domain.RawDocument, next *domain.Lockfile) (*domain.Lockfile, error) {
	if len(prior) == 0 {
		return next, nil
	}

	merged := *next
	merged.Extra = make(map[string]json.RawMessage, len(prior))
	for k, v := range prior {
		merged.Extra[k] = v
	}

	if raw, ok := prior["dependencies"]; ok {
		var priorDeps map[string]json.RawMessage
		if err := json.Unmarshal(raw, &priorDeps); err == nil {
			mergeEntries(merged.Dependencies, priorDeps)
		}
	}

	return &merged, nil
}

// mergeEntries attaches prior per-entry fields to entries that survived
// regeneration under the same name at the same tree position. Prior entries
// the new tree no longer contains are dropped.
func mergeEntries(deps domain.EntryDeps, prior map[string]json.RawMessage) {
	for name, e := range deps {
		raw, ok := prior[name]
		if !ok {
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		e.Extra = fields

		if sub, ok := fields["dependencies"]; ok && len(e.Dependencies) > 0 {
			var subDeps map[string]json.RawMessage
			if err := json.Unmarshal(sub, &subDeps); err == nil {
				mergeEntries(e.Dependencies, subDeps)
			}
		}
	}
}
