package app

import (
	"fmt"

	"dtc-go/internal/config"
	"dtc-go/internal/dtc"
)

// ApplyPreset overlays a named preset onto the request. Only fields
// the preset specifies are touched, so a minimal preset can flip one
// switch and leave the rest of the request to flags and config.
// Presets are applied before flag overrides by the CLI.
func ApplyPreset(cfg *config.Config, name string, req *dtc.JobRequest) error {
	p := cfg.FindPreset(name)
	if p == nil {
		return fmt.Errorf("unknown preset: %q", name)
	}

	if p.MatchMode != "" {
		mode, err := dtc.ParseMatchMode(p.MatchMode)
		if err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		req.MatchMode = mode
	}
	if p.SetModified != nil {
		req.SetModified = *p.SetModified
	}
	if p.SetCreated != nil {
		req.SetCreatedFromModified = *p.SetCreated
	}
	if p.DryRun != nil {
		req.DryRun = *p.DryRun
	}
	if len(p.Extensions) > 0 {
		req.Extensions = p.Extensions
	}

	return nil
}
