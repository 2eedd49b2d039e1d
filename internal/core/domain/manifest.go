package domain

// Manifest is the parsed content of one package manifest file. Dependency
// categories are kept separate because the builder and classifier combine
// them with different precedence.
type Manifest struct {
	// Name is the package name declared in the manifest.
	Name string

	// Version is the declared semantic version, treated as opaque.
	Version string

	// Dependencies, OptionalDependencies, DevDependencies and PeerDependencies
	// map dependency names to declared version ranges.
	Dependencies         map[string]string
	OptionalDependencies map[string]string
	DevDependencies      map[string]string
	PeerDependencies     map[string]string

	// Integrity and Resolved are installer-written metadata fields; empty when
	// the manifest carries none.
	Integrity string
	Resolved  string
}

// NonDevNames returns the requirement names used for the dev-marking pass:
// everything the root declares except development dependencies.
func (m *Manifest) NonDevNames() []string {
	return nameUnion(m.Dependencies, m.OptionalDependencies, m.PeerDependencies)
}

// NonOptionalNames returns the requirement names used for the
// optional-marking pass: everything the root declares except optional
// dependencies.
func (m *Manifest) NonOptionalNames() []string {
	return nameUnion(m.Dependencies, m.DevDependencies, m.PeerDependencies)
}

func nameUnion(categories ...map[string]string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, cat := range categories {
		for name := range cat {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
