package lockgen

import "go.trai.ch/relock/internal/core/domain"

// classify derives the dev and optional flags for every entry in the tree by
// comparing reachability under two subsets of the root's declared
// requirements. An entry absent from both reachable sets carries both flags:
// it is only ever pulled in by dev-only and optional-only paths.
func classify(pkgRoot *domain.Entry, top domain.EntryDeps, man *domain.Manifest) error {
	// Dev marking: anything unreachable from the non-dev requirement names.
	nonDev, err := domain.CollectReachable(pkgRoot, man.NonDevNames())
	if err != nil {
		return err
	}
	domain.WalkEntries(top, func(_ string, e *domain.Entry) {
		if !nonDev[e] {
			e.Dev = true
		}
	})

	// Optional marking: anything unreachable from the non-optional names.
	nonOptional, err := domain.CollectReachable(pkgRoot, man.NonOptionalNames())
	if err != nil {
		return err
	}
	domain.WalkEntries(top, func(_ string, e *domain.Entry) {
		if !nonOptional[e] {
			e.Optional = true
		}
	})

	return nil
}
