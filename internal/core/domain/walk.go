package domain

// WalkEntries traverses a nested entry tree in post-order: for every entry the
// children in its Dependencies map are visited strictly before the entry
// itself. Names are visited in lexicographic order so repeated walks over the
// same tree are identical.
func WalkEntries(deps EntryDeps, visit func(name string, e *Entry)) {
	for _, name := range deps.Names() {
		e := deps[name]
		if len(e.Dependencies) > 0 {
			WalkEntries(e.Dependencies, visit)
		}
		visit(name, e)
	}
}
