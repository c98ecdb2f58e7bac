package emit

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// YearPlaceholder in a footer copyright is replaced by the generation year.
const YearPlaceholder = "{year}"

var copyrightMarkdown = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

// RenderCopyright substitutes the year into src and renders it from Markdown
// to HTML. A single paragraph is returned without its <p> wrapper.
func RenderCopyright(src string, year int) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	text := strings.ReplaceAll(src, YearPlaceholder, strconv.Itoa(year))

	var buf bytes.Buffer
	if err := copyrightMarkdown.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render copyright: %w", err)
	}
	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}
