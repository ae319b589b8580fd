package templates

import "github.com/jonathan/resume-builder/internal/types"

// DefaultTemplateID is used when nothing is selected or the saved id is unknown.
const DefaultTemplateID = "modern"

// presets is the fixed catalog, in display order. Size, spacing and border
// values are style tokens resolved by the renderer.
var presets = []types.TemplateStyle{
	{
		ID:          "modern",
		Name:        "Modern Professional",
		Description: "Clean and contemporary design with subtle accents",
		Colors: types.Colors{
			"primary":    "#2563eb",
			"secondary":  "#64748b",
			"accent":     "#3b82f6",
			"text":       "#1e293b",
			"textLight":  "#64748b",
			"background": "#ffffff",
			"border":     "#e2e8f0",
		},
		Typography: types.Typography{
			HeadingFont:   "Inter",
			BodyFont:      "Inter",
			HeadingWeight: "600",
			BodyWeight:    "400",
			HeadingSize:   "text-lg",
			BodySize:      "text-sm",
			LineHeight:    "leading-relaxed",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderCentered,
			SectionSpacing: "mb-6",
			ItemSpacing:    "mb-4",
			BorderStyle:    "border-b border-gray-300",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "sidebar",
		Name:        "Professional Sidebar",
		Description: "Two-column layout with dark header and sidebar design",
		Colors: types.Colors{
			"primary":     "#ffffff",
			"secondary":   "#e5e7eb",
			"accent":      "#374151",
			"text":        "#111827",
			"textLight":   "#6b7280",
			"background":  "#ffffff",
			"border":      "#d1d5db",
			"headerBg":    "#4b5563",
			"sidebarBg":   "#e5e7eb",
			"sidebarText": "#374151",
		},
		Typography: types.Typography{
			HeadingFont:   "Inter",
			BodyFont:      "Inter",
			HeadingWeight: "700",
			BodyWeight:    "400",
			HeadingSize:   "text-lg",
			BodySize:      "text-sm",
			LineHeight:    "leading-relaxed",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderLeftAligned,
			SectionSpacing: "mb-6",
			ItemSpacing:    "mb-4",
			BorderStyle:    "border-b border-gray-300",
			LayoutType:     types.LayoutSidebar,
		},
	},
	{
		ID:          "classic",
		Name:        "Classic Traditional",
		Description: "Timeless design perfect for conservative industries",
		Colors: types.Colors{
			"primary":    "#1f2937",
			"secondary":  "#6b7280",
			"accent":     "#374151",
			"text":       "#111827",
			"textLight":  "#6b7280",
			"background": "#ffffff",
			"border":     "#d1d5db",
		},
		Typography: types.Typography{
			HeadingFont:   "Georgia",
			BodyFont:      "Georgia",
			HeadingWeight: "700",
			BodyWeight:    "400",
			HeadingSize:   "text-lg",
			BodySize:      "text-sm",
			LineHeight:    "leading-normal",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderLeftAligned,
			SectionSpacing: "mb-5",
			ItemSpacing:    "mb-3",
			BorderStyle:    "border-b-2 border-gray-800",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "creative",
		Name:        "Creative Bold",
		Description: "Eye-catching design for creative professionals",
		Colors: types.Colors{
			"primary":    "#7c3aed",
			"secondary":  "#a855f7",
			"accent":     "#c084fc",
			"text":       "#1e1b4b",
			"textLight":  "#6366f1",
			"background": "#ffffff",
			"border":     "#e0e7ff",
		},
		Typography: types.Typography{
			HeadingFont:   "Poppins",
			BodyFont:      "Inter",
			HeadingWeight: "700",
			BodyWeight:    "400",
			HeadingSize:   "text-xl",
			BodySize:      "text-sm",
			LineHeight:    "leading-relaxed",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderCentered,
			SectionSpacing: "mb-7",
			ItemSpacing:    "mb-4",
			BorderStyle:    "border-b-2 border-purple-300",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "minimal",
		Name:        "Minimal Clean",
		Description: "Ultra-clean design with maximum white space",
		Colors: types.Colors{
			"primary":    "#000000",
			"secondary":  "#525252",
			"accent":     "#737373",
			"text":       "#171717",
			"textLight":  "#737373",
			"background": "#ffffff",
			"border":     "#e5e5e5",
		},
		Typography: types.Typography{
			HeadingFont:   "Inter",
			BodyFont:      "Inter",
			HeadingWeight: "500",
			BodyWeight:    "300",
			HeadingSize:   "text-lg",
			BodySize:      "text-sm",
			LineHeight:    "leading-loose",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderLeftAligned,
			SectionSpacing: "mb-8",
			ItemSpacing:    "mb-5",
			BorderStyle:    "border-b border-gray-200",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "executive",
		Name:        "Executive Elite",
		Description: "Sophisticated design for senior-level positions",
		Colors: types.Colors{
			"primary":    "#1e40af",
			"secondary":  "#3730a3",
			"accent":     "#4f46e5",
			"text":       "#1e293b",
			"textLight":  "#475569",
			"background": "#ffffff",
			"border":     "#cbd5e1",
		},
		Typography: types.Typography{
			HeadingFont:   "Playfair Display",
			BodyFont:      "Inter",
			HeadingWeight: "700",
			BodyWeight:    "400",
			HeadingSize:   "text-xl",
			BodySize:      "text-sm",
			LineHeight:    "leading-relaxed",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderCentered,
			SectionSpacing: "mb-6",
			ItemSpacing:    "mb-4",
			BorderStyle:    "border-b-2 border-blue-600",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "tech",
		Name:        "Tech Innovator",
		Description: "Modern design tailored for technology professionals",
		Colors: types.Colors{
			"primary":    "#059669",
			"secondary":  "#047857",
			"accent":     "#10b981",
			"text":       "#064e3b",
			"textLight":  "#065f46",
			"background": "#ffffff",
			"border":     "#d1fae5",
		},
		Typography: types.Typography{
			HeadingFont:   "JetBrains Mono",
			BodyFont:      "Inter",
			HeadingWeight: "600",
			BodyWeight:    "400",
			HeadingSize:   "text-lg",
			BodySize:      "text-sm",
			LineHeight:    "leading-relaxed",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderLeftAligned,
			SectionSpacing: "mb-6",
			ItemSpacing:    "mb-4",
			BorderStyle:    "border-b border-emerald-300",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "elegant",
		Name:        "Elegant Luxury",
		Description: "Refined design with premium aesthetics",
		Colors: types.Colors{
			"primary":    "#92400e",
			"secondary":  "#a16207",
			"accent":     "#d97706",
			"text":       "#451a03",
			"textLight":  "#78350f",
			"background": "#ffffff",
			"border":     "#fde68a",
		},
		Typography: types.Typography{
			HeadingFont:   "Crimson Text",
			BodyFont:      "Inter",
			HeadingWeight: "600",
			BodyWeight:    "400",
			HeadingSize:   "text-lg",
			BodySize:      "text-sm",
			LineHeight:    "leading-relaxed",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderCentered,
			SectionSpacing: "mb-6",
			ItemSpacing:    "mb-4",
			BorderStyle:    "border-b border-amber-300",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "corporate",
		Name:        "Corporate Professional",
		Description: "Business-focused design for corporate environments",
		Colors: types.Colors{
			"primary":    "#1f2937",
			"secondary":  "#374151",
			"accent":     "#4b5563",
			"text":       "#111827",
			"textLight":  "#6b7280",
			"background": "#ffffff",
			"border":     "#d1d5db",
		},
		Typography: types.Typography{
			HeadingFont:   "Source Sans Pro",
			BodyFont:      "Source Sans Pro",
			HeadingWeight: "600",
			BodyWeight:    "400",
			HeadingSize:   "text-lg",
			BodySize:      "text-sm",
			LineHeight:    "leading-normal",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderLeftAligned,
			SectionSpacing: "mb-5",
			ItemSpacing:    "mb-3",
			BorderStyle:    "border-b border-gray-400",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "artistic",
		Name:        "Artistic Expression",
		Description: "Creative design for artists and designers",
		Colors: types.Colors{
			"primary":    "#dc2626",
			"secondary":  "#ea580c",
			"accent":     "#f59e0b",
			"text":       "#7f1d1d",
			"textLight":  "#b91c1c",
			"background": "#ffffff",
			"border":     "#fecaca",
		},
		Typography: types.Typography{
			HeadingFont:   "Oswald",
			BodyFont:      "Inter",
			HeadingWeight: "600",
			BodyWeight:    "400",
			HeadingSize:   "text-xl",
			BodySize:      "text-sm",
			LineHeight:    "leading-relaxed",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderCentered,
			SectionSpacing: "mb-7",
			ItemSpacing:    "mb-4",
			BorderStyle:    "border-b-2 border-red-300",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
	{
		ID:          "academic",
		Name:        "Academic Scholar",
		Description: "Professional design for academic and research positions",
		Colors: types.Colors{
			"primary":    "#1e3a8a",
			"secondary":  "#1e40af",
			"accent":     "#3b82f6",
			"text":       "#1e293b",
			"textLight":  "#475569",
			"background": "#ffffff",
			"border":     "#dbeafe",
		},
		Typography: types.Typography{
			HeadingFont:   "Libre Baskerville",
			BodyFont:      "Inter",
			HeadingWeight: "700",
			BodyWeight:    "400",
			HeadingSize:   "text-lg",
			BodySize:      "text-sm",
			LineHeight:    "leading-relaxed",
		},
		Layout: types.TemplateLayout{
			HeaderStyle:    types.HeaderLeftAligned,
			SectionSpacing: "mb-6",
			ItemSpacing:    "mb-4",
			BorderStyle:    "border-b border-blue-300",
			LayoutType:     types.LayoutSingleColumn,
		},
	},
}
