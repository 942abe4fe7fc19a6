package render

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeaderOnly(t *testing.T) {
	doc := Render(model.Snapshot{FullName: "Jane Doe", Email: "jane@x.com", Phone: "555-1234"})

	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, Block{Kind: KindName, Text: "Jane Doe", Bold: true, FontSize: NameFontSize, Align: AlignCenter}, doc.Blocks[0])
	assert.Equal(t, Block{Kind: KindContact, Text: "jane@x.com | 555-1234", FontSize: ContactFontSize, Align: AlignCenter}, doc.Blocks[1])
	assert.Empty(t, doc.Headings())
}

func TestRenderEmptySnapshot(t *testing.T) {
	doc := Render(model.Snapshot{})

	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "", doc.Blocks[0].Text)
	assert.Equal(t, " | ", doc.Blocks[1].Text)
	assert.Empty(t, doc.Headings())
}

func TestRenderBlankSummaryIsSkipped(t *testing.T) {
	doc := Render(model.Snapshot{Summary: "  \n\t"})
	assert.Empty(t, doc.Headings())
}

func TestRenderSummary(t *testing.T) {
	doc := Render(model.Snapshot{Summary: "Builds reliable systems."})

	require.Len(t, doc.Blocks, 4)
	assert.Equal(t, Block{Kind: KindSection, Text: HeadingSummary, Bold: true, FontSize: SectionFontSize, MarginTop: SectionMargin}, doc.Blocks[2])
	assert.Equal(t, Block{Kind: KindParagraph, Text: "Builds reliable systems.", FontSize: BodyFontSize}, doc.Blocks[3])
}

func TestRenderSingleEducation(t *testing.T) {
	doc := Render(model.Snapshot{
		Education: []model.EducationEntry{{Degree: "BSc CS", Institution: "State U", Year: "2020"}},
	})

	require.Len(t, doc.Blocks, 6)
	assert.Equal(t, []string{HeadingEducation}, doc.Headings())
	assert.Equal(t, Block{Kind: KindLine, Text: "BSc CS", Bold: true, FontSize: BodyFontSize}, doc.Blocks[3])
	assert.Equal(t, Block{Kind: KindLine, Text: "State U, 2020", FontSize: BodyFontSize}, doc.Blocks[4])
	assert.Equal(t, KindSpacer, doc.Blocks[5].Kind)
	assert.Equal(t, "", doc.Blocks[5].Text)
}

func TestRenderExperience(t *testing.T) {
	doc := Render(model.Snapshot{
		Experience: []model.ExperienceEntry{
			{Position: "Engineer", Company: "Acme", Duration: "2020-2022", Description: "Built the billing pipeline."},
			{Position: "Lead", Company: "Globex"},
		},
	})

	assert.Equal(t, []string{HeadingExperience}, doc.Headings())
	texts := make([]string, 0, len(doc.Blocks))
	for _, b := range doc.Blocks[3:] {
		texts = append(texts, b.Text)
	}
	assert.Equal(t, []string{
		"Engineer at Acme", "2020-2022", "Built the billing pipeline.", "",
		"Lead at Globex", "", "", "",
	}, texts)
	assert.True(t, doc.Blocks[3].Bold)
	assert.False(t, doc.Blocks[4].Bold)
}

func TestRenderSkillsJoined(t *testing.T) {
	doc := Render(model.Snapshot{Skills: []string{"Go", "Rust", "TypeScript"}})

	require.Len(t, doc.Blocks, 4)
	assert.Equal(t, []string{HeadingSkills}, doc.Headings())
	assert.Equal(t, KindParagraph, doc.Blocks[3].Kind)
	assert.Equal(t, "Go, Rust, TypeScript", doc.Blocks[3].Text)
}

func TestRenderSectionOrderIsFixed(t *testing.T) {
	doc := Render(model.Snapshot{
		FullName:   "Jane Doe",
		Summary:    "Summary",
		Skills:     []string{"Go"},
		Experience: []model.ExperienceEntry{{Position: "Engineer", Company: "Acme"}},
		Education:  []model.EducationEntry{{Degree: "BSc"}},
	})
	assert.Equal(t, []string{HeadingSummary, HeadingEducation, HeadingExperience, HeadingSkills}, doc.Headings())
}

func TestRenderIsDeterministic(t *testing.T) {
	s := model.Snapshot{
		FullName:  "Jane Doe",
		Summary:   "Summary",
		Education: []model.EducationEntry{{Degree: "BSc", Institution: "State U", Year: "2020"}},
		Skills:    []string{"Go", "Go"},
	}
	assert.Equal(t, Render(s), Render(s))

	a, err := RenderHTML(Render(s))
	require.NoError(t, err)
	b, err := RenderHTML(Render(s))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDocumentString(t *testing.T) {
	doc := Render(model.Snapshot{FullName: "Jane", Skills: []string{"Go"}})
	assert.Equal(t, "Jane\n | \n\nSkills\nGo\n", doc.String())
}
