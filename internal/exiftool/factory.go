package exiftool

import (
	"fmt"

	"dtc-go/internal/config"
	"dtc-go/internal/dtc"
)

// NewResolverFromConfig creates the tool resolver for the configured
// binary. An empty binary setting means the stock "exiftool" command.
func NewResolverFromConfig(cfg config.ToolConfig) *Resolver {
	binary := cfg.Binary
	if binary == "" {
		binary = "exiftool"
	}
	return NewResolver(binary)
}

// NewInstallerFromConfig creates a ToolInstaller based on the
// configured installer kind.
func NewInstallerFromConfig(cfg config.ToolConfig, cmd dtc.CommandRunner) (dtc.ToolInstaller, error) {
	switch cfg.Installer {
	case "", "brew":
		return NewBrewInstaller(cmd), nil
	case "none":
		return NopInstaller{}, nil
	default:
		return nil, fmt.Errorf("unknown installer type: %s", cfg.Installer)
	}
}
