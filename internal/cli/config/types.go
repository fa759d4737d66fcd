// Package config loads bindcov configuration from file, environment
// variables, and CLI flags.
package config

// Default configuration values.
const (
	DefaultChecklist = "coverage.md"
	DefaultStateFile = ".bindcov/state.db"
	DefaultOutput    = "auto"
	DefaultServePort = 8765
)

// ServeConfig holds settings for the coverage dashboard server.
type ServeConfig struct {
	Port  int  `koanf:"port"`
	Watch bool `koanf:"watch"`
}

// Config is the resolved bindcov configuration.
type Config struct {
	// Checklist is the path to the coverage checklist document.
	Checklist string `koanf:"checklist"`

	// StatePath is the path to the snapshot database.
	StatePath string `koanf:"state_path"`

	// OutputFormat selects the output mode (auto|text|markdown|json).
	OutputFormat string `koanf:"output"`

	Verbose bool `koanf:"verbose"`

	Serve ServeConfig `koanf:"serve"`

	// ProjectRoot is the directory relative paths resolve against.
	// Derived at load time, never read from file.
	ProjectRoot string `koanf:"-"`
}
