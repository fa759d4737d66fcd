// Package commands implements the bindcov subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bindcov/bindcov/internal/cli/config"
	"github.com/bindcov/bindcov/internal/cli/output"
	"github.com/bindcov/bindcov/internal/registry"
	"github.com/bindcov/bindcov/pkg/checklist"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's
// resolved configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, falling back to
// environment variables when no config was loaded (e.g. in tests that
// execute a command without the root's PersistentPreRunE).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Checklist:    getEnvOrDefault("BINDCOV_CHECKLIST", config.DefaultChecklist),
		StatePath:    getEnvOrDefault("BINDCOV_STATE_PATH", config.DefaultStateFile),
		OutputFormat: getEnvOrDefault("BINDCOV_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("BINDCOV_VERBOSE") == "true",
		Serve: config.ServeConfig{
			Port: config.DefaultServePort,
		},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadDocument parses the configured checklist file.
func (c *CommandContext) loadDocument() (*checklist.Document, error) {
	return checklist.ParseFile(c.Cfg.Checklist)
}

// loadRegistry parses the checklist and loads it into a registry.
func (c *CommandContext) loadRegistry() (*registry.Registry, *checklist.Document, error) {
	doc, err := c.loadDocument()
	if err != nil {
		return nil, nil, err
	}
	return registry.Load(doc), doc, nil
}
