package site

import (
	"slices"

	"github.com/vyckey/notesite/internal/foundation/normalization"
)

// Position places a navbar item on the left or right side.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

var positionNormalizer = normalization.NewNormalizer(map[string]Position{
	"left":  PositionLeft,
	"right": PositionRight,
})

// NormalizePosition canonicalizes raw, returning "" if unknown.
func NormalizePosition(raw string) Position {
	p, _ := positionNormalizer.Lookup(raw)
	return p
}

// BrokenLinkPolicy selects how the framework reacts to broken links.
type BrokenLinkPolicy string

const (
	BrokenLinksThrow  BrokenLinkPolicy = "throw"
	BrokenLinksWarn   BrokenLinkPolicy = "warn"
	BrokenLinksLog    BrokenLinkPolicy = "log"
	BrokenLinksIgnore BrokenLinkPolicy = "ignore"
)

var brokenLinkNormalizer = normalization.NewNormalizer(map[string]BrokenLinkPolicy{
	"throw":  BrokenLinksThrow,
	"warn":   BrokenLinksWarn,
	"log":    BrokenLinksLog,
	"ignore": BrokenLinksIgnore,
})

// NormalizeBrokenLinkPolicy canonicalizes raw, returning "" if unknown.
func NormalizeBrokenLinkPolicy(raw string) BrokenLinkPolicy {
	p, _ := brokenLinkNormalizer.Lookup(raw)
	return p
}

// Extension is a content transform enabled for a collection.
type Extension string

const (
	// ExtensionMath renders TeX math (remark-math + rehype-katex).
	ExtensionMath    Extension = "math"
	ExtensionMermaid Extension = "mermaid"
)

var extensionNormalizer = normalization.NewNormalizer(map[string]Extension{
	"math":    ExtensionMath,
	"katex":   ExtensionMath,
	"mermaid": ExtensionMermaid,
})

// NormalizeExtension canonicalizes raw ("KaTeX" -> "math"), returning "" if unknown.
func NormalizeExtension(raw string) Extension {
	e, _ := extensionNormalizer.Lookup(raw)
	return e
}

// FooterStyle selects the footer color scheme.
type FooterStyle string

const (
	FooterDark  FooterStyle = "dark"
	FooterLight FooterStyle = "light"
)

var footerStyleNormalizer = normalization.NewNormalizer(map[string]FooterStyle{
	"dark":  FooterDark,
	"light": FooterLight,
})

// NormalizeFooterStyle canonicalizes raw, returning "" if unknown.
func NormalizeFooterStyle(raw string) FooterStyle {
	s, _ := footerStyleNormalizer.Lookup(raw)
	return s
}

// CodeTheme names a syntax-highlighting theme shipped with prism-react-renderer.
type CodeTheme string

const (
	DefaultCodeTheme     CodeTheme = "github"
	DefaultDarkCodeTheme CodeTheme = "dracula"
)

var codeThemeNames = []string{
	"dracula", "duotoneDark", "duotoneLight", "github", "gruvboxMaterialDark",
	"gruvboxMaterialLight", "jettwaveDark", "jettwaveLight", "nightOwl", "nightOwlLight",
	"oceanicNext", "okaidia", "oneDark", "oneLight", "palenight", "shadesOfPurple",
	"synthwave84", "ultramin", "vsDark", "vsLight",
}

var codeThemeNormalizer = func() *normalization.Normalizer[CodeTheme] {
	m := make(map[string]CodeTheme, len(codeThemeNames))
	for _, n := range codeThemeNames {
		m[n] = CodeTheme(n)
	}
	return normalization.NewNormalizer(m)
}()

// NormalizeCodeTheme canonicalizes raw ("NightOwl" -> "nightOwl"), returning "" if unknown.
func NormalizeCodeTheme(raw string) CodeTheme {
	t, _ := codeThemeNormalizer.Lookup(raw)
	return t
}

// CodeThemes lists the known code theme names as emitted ("nightOwl"), sorted
// case-insensitively.
func CodeThemes() []string { return slices.Clone(codeThemeNames) }

// Heading levels accepted for the table of contents.
const (
	MinTOCLevel        = 2
	MaxTOCLevel        = 6
	DefaultTOCMinLevel = 2
	DefaultTOCMaxLevel = 3
)
