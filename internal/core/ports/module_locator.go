package ports

// ModuleLocator finds the installation directory of a named dependency.
//
//go:generate mockgen -source=module_locator.go -destination=mocks/mock_module_locator.go -package=mocks
type ModuleLocator interface {
	// Locate resolves name from fromDir following the installer's search
	// rules, walking enclosing install containers outward. It returns
	// domain.ErrModuleNotFound when no installation exists; any other failure
	// is fatal for the requesting run.
	Locate(fromDir, name string) (string, error)
}
