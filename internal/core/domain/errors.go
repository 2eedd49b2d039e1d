package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleNotFound is returned by the module locator when a package has no
	// installation directory reachable from the requesting directory.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrScopeExhausted is returned when a logical requirement cannot be
	// satisfied by any enclosing container. A correctly built tree never
	// triggers it; it signals a construction bug.
	ErrScopeExhausted = zerr.New("requirement unresolvable in scope chain")

	// ErrManifestMalformed is returned when a manifest file exists but cannot
	// be parsed.
	ErrManifestMalformed = zerr.New("manifest malformed")

	// ErrGenerationFailed is returned when one or more package directories
	// failed to produce a lockfile.
	ErrGenerationFailed = zerr.New("lockfile generation failed")
)
