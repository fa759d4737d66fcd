package config

import (
	"fmt"

	"github.com/bindcov/bindcov/internal/cli/output"
)

// Validate checks a loaded configuration for values no command could
// work with.
func Validate(cfg *Config) error {
	if cfg.Checklist == "" {
		return fmt.Errorf("checklist path must not be empty")
	}
	if !output.Mode(cfg.OutputFormat).Valid() {
		return fmt.Errorf("invalid output format %q, must be one of: auto, text, markdown, json", cfg.OutputFormat)
	}
	if cfg.Serve.Port < 0 || cfg.Serve.Port > 65535 {
		return fmt.Errorf("invalid serve port %d", cfg.Serve.Port)
	}
	return nil
}
