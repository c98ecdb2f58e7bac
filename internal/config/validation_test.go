package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"valid", Config{Output: OutputConfig{Directory: "site", Targets: []Target{TargetHugo}}}, ""},
		{"no directory", Config{Output: OutputConfig{Targets: []Target{TargetHugo}}}, "output.directory"},
		{"no targets", Config{Output: OutputConfig{Directory: "site"}}, "output.targets"},
		{"unknown target", Config{Output: OutputConfig{Directory: "site", Targets: []Target{"jekyll"}}}, "output.targets"},
		{"unknown override target", Config{Output: OutputConfig{
			Directory: "site",
			Targets:   []Target{TargetHugo},
			Overrides: map[Target]map[string]any{"jekyll": {"x": 1}},
		}}, "output.overrides"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(&tt.cfg)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			ce, ok := ferrors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, ferrors.CategoryConfig, ce.Category())
			assert.Equal(t, tt.field, ce.Context()["field"])
		})
	}
}

func TestOutputConfig_HasTarget(t *testing.T) {
	o := OutputConfig{Targets: []Target{TargetHugo}}
	assert.True(t, o.HasTarget(TargetHugo))
	assert.False(t, o.HasTarget(TargetDocusaurus))
}

func TestLogLevel_SlogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.SlogLevel().String())
	assert.Equal(t, "WARN", NormalizeLogLevel("warning").SlogLevel().String())
	assert.Equal(t, "INFO", LogLevel("").SlogLevel().String())
}
