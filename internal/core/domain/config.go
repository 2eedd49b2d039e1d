package domain

// ModulesDirName is the directory name package installers nest installations
// under.
const ModulesDirName = "node_modules"

// Config holds the tool configuration for a generation invocation.
type Config struct {
	// Packages lists the package directories to generate lockfiles for when
	// the command line names none.
	Packages []string

	// Parallelism bounds how many directories are processed concurrently.
	// Zero or negative means one worker per CPU.
	Parallelism int

	// Dev controls whether the root manifest's development dependencies are
	// included in the reconstruction.
	Dev bool
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Dev: true,
	}
}
