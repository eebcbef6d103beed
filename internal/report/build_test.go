package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/models"
)

func TestBuildIsDeterministic(t *testing.T) {
	session := sampleSession(t)

	first := Build(session)
	second := Build(session)
	assert.Equal(t, first, second)
}

func TestBuildSectionLayout(t *testing.T) {
	session := sampleSession(t)

	doc := Build(session)
	categories := catalogue.Categories()
	require.Len(t, doc.Sections, 2+len(categories))

	assert.Equal(t, "Cover", doc.Sections[0].Title)
	assert.False(t, doc.Sections[0].Category)
	assert.Equal(t, "Analysis Summary", doc.Sections[1].Title)
	assert.False(t, doc.Sections[1].Category)

	for i, category := range categories {
		section := doc.Sections[2+i]
		assert.Equal(t, category.Title, section.Title)
		assert.True(t, section.Category)
		// Heading, subtitle paragraph, then one block per item.
		require.Len(t, section.Blocks, 2+len(category.Items))
	}
}

func TestBuildCoverPlaceholders(t *testing.T) {
	session := models.NewSession(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	cover := Build(session).Sections[0]

	var labels []string
	values := map[string]string{}
	for _, block := range cover.Blocks {
		if block.Kind == BlockLabeledValue {
			labels = append(labels, block.Label)
			values[block.Label] = block.Value
		}
	}
	assert.Equal(t, []string{"Name", "Date of Birth", "Assessment Date", "Completed By"}, labels)
	assert.Equal(t, "Not provided", values["Name"])
	assert.Equal(t, "2025-03-14", values["Assessment Date"])
	// The additional-information line only appears when there is content.
	assert.NotContains(t, labels, "Additional Information")
}

func TestBuildAnalysisOmitsUntouchedCategories(t *testing.T) {
	session := models.NewSession(time.Now())
	categories := catalogue.Categories()
	session.SetSelection(categories[0].Key(0), models.SelectionAvoids)

	summary := Build(session).Sections[1]

	var labels []string
	for _, block := range summary.Blocks {
		if block.Kind == BlockLabeledValue {
			labels = append(labels, block.Label)
		}
	}
	assert.Contains(t, labels, categories[0].Title)
	for _, category := range categories[1:] {
		assert.NotContains(t, labels, category.Title)
	}
}

func TestBuildUnansweredItemsCarryNoSelection(t *testing.T) {
	session := sampleSession(t)
	category := catalogue.Categories()[0]

	section := Build(session).Sections[2]
	answered := section.Blocks[2]
	unanswered := section.Blocks[3]

	require.Equal(t, BlockItem, answered.Kind)
	assert.Equal(t, 1, answered.Ordinal)
	assert.Equal(t, category.Items[0].Prompt, answered.Prompt)
	assert.Equal(t, "AVOIDS", answered.SelectionLabel)
	assert.Equal(t, "tags bother them", answered.Notes)

	require.Equal(t, BlockItem, unanswered.Kind)
	assert.Empty(t, unanswered.SelectionLabel)
}

// sampleSession answers the first item of the first category and leaves the rest blank.
func sampleSession(t *testing.T) *models.Session {
	t.Helper()
	session := models.NewSession(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	session.Name = "Alex Example"
	session.CompletedBy = "Parent"
	session.SetSelection(catalogue.Categories()[0].Key(0), models.SelectionAvoids)
	session.SetNotes(catalogue.Categories()[0].Key(0), "tags bother them")
	return session
}
