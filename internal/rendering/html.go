package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/richtext"
	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.html.tmpl
var embeddedTemplates embed.FS

// PreviewClass is the class of the root element of every rendered resume.
const PreviewClass = "resume-preview"

// pageData is the data structure passed to the HTML templates
type pageData struct {
	Title       string
	CSS         template.CSS
	TemplateID  string
	Sidebar     bool
	Header      layout.Header
	Subtitle    string
	Sections    []viewSection
	SkillGroups []layout.SkillGroup
	Languages   []string
}

// viewSection is a layout section plus presentation flags
type viewSection struct {
	layout.Section
	Condensed bool
}

// Renderer renders resume documents to HTML pages.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the built-in templates.
func NewRenderer() (*Renderer, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, &TemplateError{Set: "built-in", Message: "embedded files unavailable", Cause: err}
	}
	return newRenderer(sub, "built-in")
}

// NewRendererFromDir parses templates from dir instead of the built-in set.
// The directory must define the "page", "single-column" and "sidebar" templates.
func NewRendererFromDir(dir string) (*Renderer, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{Set: dir, Message: "template directory not found", Cause: err}
		}
		return nil, &TemplateError{Set: dir, Message: "template directory unreadable", Cause: err}
	}
	if !info.IsDir() {
		return nil, &TemplateError{Set: dir, Message: "not a directory"}
	}
	return newRenderer(os.DirFS(dir), dir)
}

func newRenderer(fsys fs.FS, name string) (*Renderer, error) {
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"rich": richtext.HTML,
		"join": strings.Join,
	}).ParseFS(fsys, "*.html.tmpl")
	if err != nil {
		return nil, &TemplateError{Set: name, Message: "parse failed", Cause: err}
	}
	for _, required := range []string{"page", "single-column", "sidebar"} {
		if tmpl.Lookup(required) == nil {
			return nil, &TemplateError{Set: name, Message: fmt.Sprintf("%q is not defined", required)}
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces a complete HTML page for doc under style. The layout
// variant follows style.Layout.LayoutType; anything other than "sidebar"
// renders single-column. Missing optional data renders as nothing.
func (r *Renderer) Render(doc types.ResumeDocument, style types.TemplateStyle) (string, error) {
	data := buildPageData(doc, style)

	var out strings.Builder
	if err := r.tmpl.ExecuteTemplate(&out, "page", data); err != nil {
		variant := "single-column"
		if data.Sidebar {
			variant = "sidebar"
		}
		return "", &RenderError{Layout: variant, Message: "template execution failed", Cause: err}
	}
	return out.String(), nil
}

func buildPageData(doc types.ResumeDocument, style types.TemplateStyle) pageData {
	header := layout.BuildHeader(doc.PersonalInfo)
	data := pageData{
		Title:      header.Name,
		CSS:        resolveTheme(style).css(),
		TemplateID: style.ID,
		Sidebar:    style.IsSidebar(),
		Header:     header,
	}

	sections := layout.Sections(doc)
	if !data.Sidebar {
		for _, s := range sections {
			data.Sections = append(data.Sections, viewSection{Section: s})
		}
		return data
	}

	// The sidebar variant is a reduced view: skills and languages go to the
	// side column; awards, certifications and other custom sections are not shown.
	if len(doc.WorkExperience) > 0 {
		data.Subtitle = doc.WorkExperience[0].Position
	}
	data.Languages = layout.LanguageItems(doc.CustomSections)
	for _, s := range sections {
		switch s.Kind {
		case layout.KindSummary:
			s.Title = "PROFILE"
			data.Sections = append(data.Sections, viewSection{Section: s})
		case layout.KindExperience:
			s.Title = "EXPERIENCE"
			data.Sections = append(data.Sections, viewSection{Section: s})
		case layout.KindEducation:
			data.Sections = append(data.Sections, viewSection{Section: s})
		case layout.KindAchievements:
			data.Sections = append(data.Sections, viewSection{Section: s, Condensed: true})
		case layout.KindSkills:
			data.SkillGroups = s.Skills
		}
	}
	return data
}
