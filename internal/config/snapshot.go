package config

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snapshot computes a stable hash of build-affecting normalized configuration fields.
// Logging and metrics settings are excluded. Target order is irrelevant.
// Callers should run NormalizeConfig and apply defaults first (Load does).
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) { h.Write([]byte(strings.Join(parts, "="))); h.Write([]byte{0}) }

	// yaml.v3 emits struct fields in declaration order and sorts map keys.
	siteDoc, err := yaml.Marshal(c.Site)
	if err != nil {
		return ""
	}
	w("site", string(siteDoc))

	w("output.directory", c.Output.Directory)
	targets := make([]string, len(c.Output.Targets))
	for i, t := range c.Output.Targets {
		targets[i] = string(t)
	}
	w("output.targets", strings.Join(sortedCopy(targets), ","))
	if len(c.Output.Overrides) > 0 {
		if ov, err := yaml.Marshal(c.Output.Overrides); err == nil {
			w("output.overrides", string(ov))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
