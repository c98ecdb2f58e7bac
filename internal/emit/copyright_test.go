package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCopyright(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "  ", ""},
		{"year substitution", "Copyright © {year} Notes", "Copyright © 2026 Notes"},
		{"inline markdown", "Built with [Docusaurus](https://docusaurus.io) in {year}", `Built with <a href="https://docusaurus.io">Docusaurus</a> in 2026`},
		{"emphasis", "*Notes* {year}", "<em>Notes</em> 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderCopyright(tt.in, 2026)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderCopyright_MultipleParagraphsKeepWrappers(t *testing.T) {
	got, err := RenderCopyright("first\n\nsecond", 2026)
	require.NoError(t, err)
	assert.Equal(t, "<p>first</p>\n<p>second</p>", got)
}
