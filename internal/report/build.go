package report

import (
	"fmt"

	"github.com/windgap/sensoryprofile/internal/analysis"
	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/models"
)

const (
	documentTitle    = "COMPREHENSIVE SENSORY PROFILE ASSESSMENT"
	documentSubtitle = "A Neuroaffirming Approach to Understanding Sensory Processing"

	// notProvided marks empty cover fields so they are never rendered blank.
	notProvided = "Not provided"
)

// Build composes the full report document from the session and the catalogue:
// a cover section, an analysis summary, and one section per category in
// catalogue order. It does not mutate the session.
func Build(session *models.Session) *Document {
	doc := &Document{
		Title:    documentTitle,
		Subtitle: documentSubtitle,
	}
	doc.Sections = append(doc.Sections, coverSection(session))
	doc.Sections = append(doc.Sections, analysisSection(session))
	for _, category := range catalogue.Categories() {
		doc.Sections = append(doc.Sections, categorySection(session, category))
	}
	return doc
}

func orNotProvided(value string) string {
	if value == "" {
		return notProvided
	}
	return value
}

func coverSection(session *models.Session) Section {
	blocks := []Block{
		{Kind: BlockHeading, Text: documentTitle},
		{Kind: BlockParagraph, Text: documentSubtitle},
		{Kind: BlockLabeledValue, Label: "Name", Value: orNotProvided(session.Name)},
		{Kind: BlockLabeledValue, Label: "Date of Birth", Value: orNotProvided(session.DateOfBirth)},
		{Kind: BlockLabeledValue, Label: "Assessment Date", Value: orNotProvided(session.AssessmentDate)},
		{Kind: BlockLabeledValue, Label: "Completed By", Value: orNotProvided(session.CompletedBy)},
	}
	if session.AdditionalInfo != "" {
		blocks = append(blocks, Block{Kind: BlockLabeledValue, Label: "Additional Information", Value: session.AdditionalInfo})
	}
	return Section{Title: "Cover", Blocks: blocks}
}

func analysisSection(session *models.Session) Section {
	tally := analysis.GlobalTally(session)
	totalAnswered := tally.Total()

	blocks := []Block{
		{Kind: BlockHeading, Text: "Analysis Summary"},
	}
	for _, selection := range models.Selections() {
		count := tally.Count(selection)
		blocks = append(blocks, Block{
			Kind:  BlockLabeledValue,
			Label: selection.Label(),
			Value: fmt.Sprintf("%d (%d%%)", count, analysis.Percentage(count, totalAnswered)),
		})
	}

	// Categories without a single answer are left out of the completion listing.
	for _, category := range catalogue.Categories() {
		answered := analysis.CategoryTally(session, category).Total()
		if answered == 0 {
			continue
		}
		blocks = append(blocks, Block{
			Kind:  BlockLabeledValue,
			Label: category.Title,
			Value: fmt.Sprintf("%d/%d items", answered, len(category.Items)),
		})
	}

	for _, observation := range analysis.Observations(tally, totalAnswered) {
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: observation})
	}

	return Section{Title: "Analysis Summary", Blocks: blocks}
}

func categorySection(session *models.Session, category catalogue.Category) Section {
	blocks := []Block{
		{Kind: BlockHeading, Text: category.Title},
		{Kind: BlockParagraph, Text: category.Subtitle},
	}
	for i, item := range category.Items {
		record := session.Responses[category.Key(i)]
		block := Block{
			Kind:     BlockItem,
			Ordinal:  i + 1,
			Prompt:   item.Prompt,
			Examples: item.Examples,
			Notes:    record.Notes,
		}
		// Unanswered items carry no selection line in the document model; only the
		// plain-text export prints an explicit "Not answered".
		if record.Selection.Valid() {
			block.SelectionLabel = record.Selection.Label()
		}
		blocks = append(blocks, block)
	}
	return Section{
		Title:    category.Title,
		Subtitle: category.Subtitle,
		Category: true,
		Blocks:   blocks,
	}
}
