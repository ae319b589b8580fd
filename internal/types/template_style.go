package types

// Layout types
const (
	LayoutSingleColumn = "single-column"
	LayoutSidebar      = "sidebar"
)

// Header styles
const (
	HeaderCentered    = "centered"
	HeaderLeftAligned = "left-aligned"
)

// TemplateStyle is a named visual preset. It is session presentation state
// and never part of the persisted ResumeDocument.
type TemplateStyle struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Colors      Colors         `json:"colors"`
	Typography  Typography     `json:"typography"`
	Layout      TemplateLayout `json:"layout"`
}

// Colors maps named slots (primary, secondary, accent, text, textLight,
// background, border, headerBg, sidebarBg, sidebarText) to color values.
type Colors map[string]string

// Get returns the color for slot, or fallback when the slot is absent or blank.
func (c Colors) Get(slot, fallback string) string {
	if v, ok := c[slot]; ok && v != "" {
		return v
	}
	return fallback
}

// Clone returns a copy of the color map.
func (c Colors) Clone() Colors {
	if c == nil {
		return nil
	}
	out := make(Colors, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Typography holds free-form style tokens for fonts, weights and sizes
type Typography struct {
	HeadingFont   string `json:"headingFont"`
	BodyFont      string `json:"bodyFont"`
	HeadingWeight string `json:"headingWeight"`
	BodyWeight    string `json:"bodyWeight"`
	HeadingSize   string `json:"headingSize"`
	BodySize      string `json:"bodySize"`
	LineHeight    string `json:"lineHeight"`
}

// TemplateLayout controls header alignment, spacing tokens and the layout variant
type TemplateLayout struct {
	HeaderStyle    string `json:"headerStyle"`
	SectionSpacing string `json:"sectionSpacing"`
	ItemSpacing    string `json:"itemSpacing"`
	BorderStyle    string `json:"borderStyle"`
	LayoutType     string `json:"layoutType"`
}

// IsSidebar reports whether the style uses the two-region sidebar layout.
func (t TemplateStyle) IsSidebar() bool {
	return t.Layout.LayoutType == LayoutSidebar
}
