package domain

import (
	"errors"
	"sort"
)

// CollectReachable computes the set of entries transitively reachable from
// root by resolving each of the given requirement names and then following
// the resolved entries' own Requires edges through the scope chain.
//
// Each entry is expanded at most once, so mutual requirements between entries
// terminate. Seed names that do not resolve are skipped: the root's declared
// categories may name packages that were never installed (absent optionals,
// uninstalled peers). A failed resolution below the seeds is a construction
// bug and propagates.
func CollectReachable(root *Entry, names []string) (map[*Entry]bool, error) {
	reachable := make(map[*Entry]bool)
	expanded := make(map[*Entry]bool)

	var expand func(e *Entry) error
	expand = func(e *Entry) error {
		reachable[e] = true
		if expanded[e] {
			return nil
		}
		expanded[e] = true

		deps := make([]string, 0, len(e.Requires))
		for dep := range e.Requires {
			deps = append(deps, dep)
		}
		sort.Strings(deps)

		for _, dep := range deps {
			next, err := ResolveScope(e, dep)
			if err != nil {
				return err
			}
			if err := expand(next); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range names {
		e, err := ResolveScope(root, name)
		if err != nil {
			if errors.Is(err, ErrScopeExhausted) {
				continue
			}
			return nil, err
		}
		if err := expand(e); err != nil {
			return nil, err
		}
	}

	return reachable, nil
}
