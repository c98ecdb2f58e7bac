package config

import (
	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
)

// ValidateConfig checks the generator settings. The site declaration is
// validated separately by site.Build.
func ValidateConfig(c *Config) error {
	if c.Output.Directory == "" {
		return ferrors.ConfigError("output directory is required").
			WithContext("field", "output.directory").Build()
	}
	if len(c.Output.Targets) == 0 {
		return ferrors.ConfigError("at least one output target is required").
			WithContext("field", "output.targets").
			WithContext("valid", Targets()).Build()
	}
	for _, t := range c.Output.Targets {
		if NormalizeTarget(string(t)) == "" {
			return ferrors.ConfigError("unsupported output target").
				WithContext("field", "output.targets").
				WithContext("value", string(t)).
				WithContext("valid", Targets()).Build()
		}
	}
	for t := range c.Output.Overrides {
		if NormalizeTarget(string(t)) == "" {
			return ferrors.ConfigError("overrides given for unsupported target").
				WithContext("field", "output.overrides").
				WithContext("value", string(t)).Build()
		}
	}
	return nil
}
