package config

import (
	"fmt"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/layout"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Defaults validation
	if c.Defaults.ProjectName == "" {
		errs = append(errs, "defaults.project_name must not be empty")
	}
	if !catalog.IsManagerID(c.Defaults.PackageManager) {
		errs = append(errs, fmt.Sprintf("defaults.package_manager %q is not a known package manager", c.Defaults.PackageManager))
	}
	if !catalog.IsFrameworkID(c.Defaults.Framework) {
		errs = append(errs, fmt.Sprintf("defaults.framework %q is not a known framework", c.Defaults.Framework))
	}

	// Output validation
	if _, ok := layout.ByName(c.Output.Layout); !ok {
		errs = append(errs, fmt.Sprintf("output.layout %q is not a known layout", c.Output.Layout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
