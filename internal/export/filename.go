package export

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// FallbackName is used when the document has no full name.
const FallbackName = "Resume"

// Filename returns "<full name>.<ext>". Path separators and control
// characters are dropped so the name is always a single path element.
func Filename(doc types.ResumeDocument, ext string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, doc.PersonalInfo.FullName)
	name = strings.Trim(strings.TrimSpace(name), ".")
	if name == "" {
		name = FallbackName
	}
	return name + "." + ext
}
