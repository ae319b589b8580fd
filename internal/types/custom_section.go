package types

import (
	"encoding/json"
	"fmt"
)

// SectionType identifies the content variant of a custom section
type SectionType string

// Custom section content variants
const (
	SectionList      SectionType = "list"
	SectionParagraph SectionType = "paragraph"
	SectionTable     SectionType = "table"
)

// SectionContent is the content of a custom section. The set of
// implementations is closed: ListContent, ParagraphContent and TableContent.
type SectionContent interface {
	SectionType() SectionType
	clone() SectionContent
}

// ListContent is a bulleted list of items
type ListContent struct {
	Items []string `json:"items"`
}

// ParagraphContent is a single block of text
type ParagraphContent struct {
	Text string `json:"text"`
}

// TableContent is a header row plus data rows
type TableContent struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// SectionType implements SectionContent.
func (ListContent) SectionType() SectionType { return SectionList }

// SectionType implements SectionContent.
func (ParagraphContent) SectionType() SectionType { return SectionParagraph }

// SectionType implements SectionContent.
func (TableContent) SectionType() SectionType { return SectionTable }

func (c ListContent) clone() SectionContent {
	return ListContent{Items: append([]string{}, c.Items...)}
}

func (c ParagraphContent) clone() SectionContent { return c }

func (c TableContent) clone() SectionContent {
	rows := make([][]string, len(c.Rows))
	for i, row := range c.Rows {
		rows[i] = append([]string{}, row...)
	}
	return TableContent{Headers: append([]string{}, c.Headers...), Rows: rows}
}

// CustomSection is a user-defined section rendered after the built-in ones,
// ordered by Order rather than by position in the slice.
type CustomSection struct {
	ID      string
	Title   string
	Order   int
	Content SectionContent
}

// Type returns the content variant, defaulting to list for a section with no content.
func (s CustomSection) Type() SectionType {
	if s.Content == nil {
		return SectionList
	}
	return s.Content.SectionType()
}

// Clone returns a deep copy of the section.
func (s CustomSection) Clone() CustomSection {
	out := s
	if s.Content != nil {
		out.Content = s.Content.clone()
	}
	return out
}

// customSectionJSON is the persisted wire form
type customSectionJSON struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Order   int             `json:"order"`
	Type    SectionType     `json:"type"`
	Content json.RawMessage `json:"content"`
}

// MarshalJSON encodes the section with an explicit type tag.
func (s CustomSection) MarshalJSON() ([]byte, error) {
	content := s.Content
	if content == nil {
		content = ListContent{Items: []string{}}
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(customSectionJSON{
		ID:      s.ID,
		Title:   s.Title,
		Order:   s.Order,
		Type:    content.SectionType(),
		Content: raw,
	})
}

// UnmarshalJSON decodes the section, dispatching on the type tag.
func (s *CustomSection) UnmarshalJSON(data []byte) error {
	var wire customSectionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	content, err := DecodeSectionContent(wire.Type, wire.Content)
	if err != nil {
		return err
	}
	*s = CustomSection{ID: wire.ID, Title: wire.Title, Order: wire.Order, Content: content}
	return nil
}

// DecodeSectionContent decodes raw content for the given type. Empty raw
// content yields the zero value of the variant.
func DecodeSectionContent(t SectionType, raw json.RawMessage) (SectionContent, error) {
	switch t {
	case SectionList, "":
		var c ListContent
		if err := decodeOptional(raw, &c); err != nil {
			return nil, err
		}
		if c.Items == nil {
			c.Items = []string{}
		}
		return c, nil
	case SectionParagraph:
		var c ParagraphContent
		if err := decodeOptional(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case SectionTable:
		var c TableContent
		if err := decodeOptional(raw, &c); err != nil {
			return nil, err
		}
		if c.Headers == nil {
			c.Headers = []string{}
		}
		if c.Rows == nil {
			c.Rows = [][]string{}
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown custom section type %q", t)
	}
}

func decodeOptional(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid custom section content: %w", err)
	}
	return nil
}
