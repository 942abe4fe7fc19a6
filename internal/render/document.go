// Package render turns a resume snapshot into a linear sequence of styled
// text blocks and hands those blocks to a document writer.
//
// Section order is fixed: name, contact line, Professional Summary,
// Education, Professional Experience, Skills. Each section after the contact
// line is emitted only when it has content. Pagination is left to the writer.
package render

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// Typography, in points.
const (
	NameFontSize    = 24
	ContactFontSize = 12
	SectionFontSize = 16
	BodyFontSize    = 12
	SectionMargin   = 20
)

const (
	HeadingSummary    = "Professional Summary"
	HeadingEducation  = "Education"
	HeadingExperience = "Professional Experience"
	HeadingSkills     = "Skills"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

type Kind int

const (
	KindName Kind = iota
	KindContact
	KindSection
	KindLine
	KindParagraph
	KindSpacer
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindContact:
		return "contact"
	case KindSection:
		return "section"
	case KindLine:
		return "line"
	case KindParagraph:
		return "paragraph"
	case KindSpacer:
		return "spacer"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Block is one styled paragraph of the output document.
type Block struct {
	Kind      Kind
	Text      string
	Bold      bool
	FontSize  float64
	Align     Align
	MarginTop float64
}

type Document struct {
	Blocks []Block
}

// Headings returns the section heading texts in document order.
func (d Document) Headings() []string {
	var out []string
	for _, b := range d.Blocks {
		if b.Kind == KindSection {
			out = append(out, b.Text)
		}
	}
	return out
}

// String renders the document as plain text, one block per line.
func (d Document) String() string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		if b.Kind == KindSection {
			sb.WriteString("\n")
		}
		sb.WriteString(b.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Render builds the document for s. It has no side effects and cannot fail.
func Render(s model.Snapshot) Document {
	var blocks []Block
	add := func(b Block) { blocks = append(blocks, b) }
	section := func(title string) {
		add(Block{Kind: KindSection, Text: title, Bold: true, FontSize: SectionFontSize, MarginTop: SectionMargin})
	}
	line := func(text string, bold bool) {
		add(Block{Kind: KindLine, Text: text, Bold: bold, FontSize: BodyFontSize})
	}
	spacer := func() {
		add(Block{Kind: KindSpacer, FontSize: BodyFontSize})
	}

	add(Block{Kind: KindName, Text: s.FullName, Bold: true, FontSize: NameFontSize, Align: AlignCenter})
	add(Block{Kind: KindContact, Text: s.Email + " | " + s.Phone, FontSize: ContactFontSize, Align: AlignCenter})

	if strings.TrimSpace(s.Summary) != "" {
		section(HeadingSummary)
		add(Block{Kind: KindParagraph, Text: s.Summary, FontSize: BodyFontSize})
	}

	if len(s.Education) > 0 {
		section(HeadingEducation)
		for _, e := range s.Education {
			line(e.Degree, true)
			line(e.Institution+", "+e.Year, false)
			spacer()
		}
	}

	if len(s.Experience) > 0 {
		section(HeadingExperience)
		for _, e := range s.Experience {
			line(e.Position+" at "+e.Company, true)
			line(e.Duration, false)
			line(e.Description, false)
			spacer()
		}
	}

	if len(s.Skills) > 0 {
		section(HeadingSkills)
		add(Block{Kind: KindParagraph, Text: strings.Join(s.Skills, ", "), FontSize: BodyFontSize})
	}

	return Document{Blocks: blocks}
}
