package rendering

import (
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// System defaults used when a style token is missing or can't be resolved.
const (
	systemFontStack = `system-ui, -apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`
	defaultWeight   = "400"
	defaultHeading  = "600"
	defaultBodySize = "0.875rem"
	defaultHeadSize = "1.125rem"
	defaultLeading  = "1.625"
	defaultSection  = "1.5rem"
	defaultItem     = "1rem"
)

var defaultColors = map[string]string{
	"primary":     "#111827",
	"secondary":   "#4b5563",
	"accent":      "#374151",
	"text":        "#111827",
	"textLight":   "#6b7280",
	"background":  "#ffffff",
	"border":      "#d1d5db",
	"headerBg":    "#4b5563",
	"sidebarBg":   "#e5e7eb",
	"sidebarText": "#374151",
}

var (
	hexColor   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColor  = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\([0-9.,%\s]+\)$`)
	namedColor = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
	cssLength  = regexp.MustCompile(`^\d+(?:\.\d+)?(?:px|rem|em|pt|%)$`)
	fontName   = regexp.MustCompile(`^[a-zA-Z0-9 \-]+$`)
	spacingTok = regexp.MustCompile(`^m[bt]-(\d+(?:\.5)?)$`)
	borderTok  = regexp.MustCompile(`^border-([a-z]+)-(\d{2,3})$`)
)

var textSizes = map[string]string{
	"text-xs":   "0.75rem",
	"text-sm":   "0.875rem",
	"text-base": "1rem",
	"text-lg":   "1.125rem",
	"text-xl":   "1.25rem",
	"text-2xl":  "1.5rem",
	"text-3xl":  "1.875rem",
}

var lineHeights = map[string]string{
	"leading-none":    "1",
	"leading-tight":   "1.25",
	"leading-snug":    "1.375",
	"leading-normal":  "1.5",
	"leading-relaxed": "1.625",
	"leading-loose":   "2",
}

// palette covers the border colors the catalog uses.
var palette = map[string]string{
	"gray-200":    "#e5e7eb",
	"gray-300":    "#d1d5db",
	"gray-400":    "#9ca3af",
	"gray-800":    "#1f2937",
	"purple-300":  "#d8b4fe",
	"blue-300":    "#93c5fd",
	"blue-600":    "#2563eb",
	"emerald-300": "#6ee7b7",
	"amber-300":   "#fcd34d",
	"red-300":     "#fca5a5",
}

// theme is a style with every token resolved to a CSS value.
type theme struct {
	headingFont   string
	bodyFont      string
	headingWeight string
	bodyWeight    string
	headingSize   string
	bodySize      string
	lineHeight    string
	sectionGap    string
	itemGap       string
	borderWidth   string
	borderColor   string
	align         string
	colors        map[string]string
}

func resolveTheme(style types.TemplateStyle) theme {
	t := theme{
		headingFont:   fontStack(style.Typography.HeadingFont),
		bodyFont:      fontStack(style.Typography.BodyFont),
		headingWeight: weight(style.Typography.HeadingWeight, defaultHeading),
		bodyWeight:    weight(style.Typography.BodyWeight, defaultWeight),
		headingSize:   lookup(textSizes, style.Typography.HeadingSize, defaultHeadSize),
		bodySize:      lookup(textSizes, style.Typography.BodySize, defaultBodySize),
		lineHeight:    lineHeight(style.Typography.LineHeight),
		sectionGap:    spacing(style.Layout.SectionSpacing, defaultSection),
		itemGap:       spacing(style.Layout.ItemSpacing, defaultItem),
		align:         "center",
		colors:        make(map[string]string, len(defaultColors)),
	}
	if style.Layout.HeaderStyle == types.HeaderLeftAligned {
		t.align = "left"
	}
	for slot, fallback := range defaultColors {
		t.colors[slot] = color(style.Colors.Get(slot, ""), fallback)
	}
	t.borderWidth, t.borderColor = border(style.Layout.BorderStyle, t.colors["border"])
	return t
}

func fontStack(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || !fontName.MatchString(name) {
		return systemFontStack
	}
	return strconv.Quote(name) + ", " + systemFontStack
}

func weight(v, fallback string) string {
	switch v {
	case "normal", "bold":
		return v
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 100 || n > 900 || n%100 != 0 {
		return fallback
	}
	return v
}

func lookup(table map[string]string, token, fallback string) string {
	if v, ok := table[token]; ok {
		return v
	}
	if cssLength.MatchString(token) {
		return token
	}
	return fallback
}

func lineHeight(token string) string {
	if v, ok := lineHeights[token]; ok {
		return v
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil && f > 0 && f < 5 {
		return token
	}
	return defaultLeading
}

func spacing(token, fallback string) string {
	if m := spacingTok.FindStringSubmatch(token); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return strconv.FormatFloat(n*0.25, 'f', -1, 64) + "rem"
	}
	if cssLength.MatchString(token) {
		return token
	}
	return fallback
}

func color(v, fallback string) string {
	v = strings.TrimSpace(v)
	if hexColor.MatchString(v) || funcColor.MatchString(v) || namedColor.MatchString(v) {
		return v
	}
	return fallback
}

// border reads tokens like "border-b-2 border-gray-800".
func border(token, fallbackColor string) (width, col string) {
	width, col = "1px", fallbackColor
	for _, part := range strings.Fields(token) {
		switch {
		case part == "border-b" || part == "border":
			width = "1px"
		case strings.HasPrefix(part, "border-b-"):
			if n, err := strconv.Atoi(strings.TrimPrefix(part, "border-b-")); err == nil && n >= 0 && n <= 8 {
				width = strconv.Itoa(n) + "px"
			}
		case borderTok.MatchString(part):
			if c, ok := palette[strings.TrimPrefix(part, "border-")]; ok {
				col = c
			}
		}
	}
	return width, col
}

// css renders the stylesheet for a resolved theme. Every value has been
// checked against a whitelist pattern or comes from a fixed table.
func (t theme) css() template.CSS {
	c := t.colors
	var b strings.Builder
	fmt.Fprintf(&b, `
body { margin: 0; background: %s; }
.resume-preview { box-sizing: border-box; max-width: 8.5in; min-height: 11in; margin: 0 auto; padding: 0.5in; background: %s; color: %s; font-family: %s; font-weight: %s; font-size: %s; line-height: %s; }
.resume-preview h1, .resume-preview h2, .resume-preview h3 { font-family: %s; font-weight: %s; margin: 0; }
.resume-header { text-align: %s; margin-bottom: %s; padding-bottom: 1rem; border-bottom: %s solid %s; }
.resume-header .name { font-size: 1.875rem; color: %s; margin-bottom: 0.5rem; }
.contact, .links { color: %s; }
.links a { color: %s; margin: 0 0.5rem; text-decoration: none; }
.section { margin-bottom: %s; }
.section-title { font-size: %s; color: %s; padding-bottom: 0.25rem; margin-bottom: 0.75rem; border-bottom: %s solid %s; }
.entry { margin-bottom: %s; }
.entry-head { display: flex; justify-content: space-between; align-items: flex-start; gap: 1rem; }
.entry-sub, .technologies, .gpa { color: %s; margin: 0.125rem 0; }
.dates { color: %s; white-space: nowrap; margin: 0; }
.label { font-weight: 600; }
.bullets { margin: 0.5rem 0 0.5rem 1rem; padding-left: 1rem; }
table.custom-table { width: 100%%; border-collapse: collapse; }
table.custom-table th, table.custom-table td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid %s; }
`,
		c["background"], c["background"], c["text"], t.bodyFont, t.bodyWeight, t.bodySize, t.lineHeight,
		t.headingFont, t.headingWeight,
		t.align, t.sectionGap, t.borderWidth, t.borderColor,
		c["primary"],
		c["textLight"],
		c["accent"],
		t.sectionGap,
		t.headingSize, c["primary"], t.borderWidth, t.borderColor,
		t.itemGap,
		c["textLight"],
		c["textLight"],
		c["border"],
	)
	fmt.Fprintf(&b, `
.layout-sidebar { padding: 0; }
.banner { background: %s; color: %s; padding: 1.5rem 2rem; text-align: %s; }
.banner .name { font-size: 1.875rem; color: %s; }
.banner .subtitle { margin: 0.25rem 0 0; color: %s; }
.columns { display: flex; }
.sidebar { width: 33%%; background: %s; color: %s; padding: 1.5rem; box-sizing: border-box; }
.sidebar-title { font-size: %s; color: %s; margin-bottom: 0.5rem; }
.sidebar-block { margin-bottom: %s; }
.sidebar ul { list-style: none; margin: 0; padding: 0; }
.sidebar a { color: %s; }
.main { width: 67%%; padding: 1.5rem 2rem; box-sizing: border-box; }
.main .section-title { color: %s; }
ul.condensed { margin: 0; padding-left: 1rem; }
`,
		c["headerBg"], c["primary"], t.align,
		c["primary"],
		c["secondary"],
		c["sidebarBg"], c["sidebarText"],
		t.headingSize, c["sidebarText"],
		t.sectionGap,
		c["sidebarText"],
		c["accent"],
	)
	//nolint:gosec // built only from validated tokens
	return template.CSS(b.String())
}
