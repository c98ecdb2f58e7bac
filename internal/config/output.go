package config

import "github.com/vyckey/notesite/internal/foundation/normalization"

// Target names a framework whose configuration file is emitted.
type Target string

const (
	TargetDocusaurus Target = "docusaurus"
	TargetHugo       Target = "hugo"
)

var targetNormalizer = normalization.NewNormalizer(map[string]Target{
	"docusaurus": TargetDocusaurus,
	"hugo":       TargetHugo,
})

// NormalizeTarget canonicalizes raw, returning "" if unknown.
func NormalizeTarget(raw string) Target {
	t, _ := targetNormalizer.Lookup(raw)
	return t
}

// Targets lists the supported targets.
func Targets() []string { return targetNormalizer.ValidKeys() }

// HasTarget reports whether t is among the configured output targets.
func (o OutputConfig) HasTarget(t Target) bool {
	for _, have := range o.Targets {
		if have == t {
			return true
		}
	}
	return false
}
