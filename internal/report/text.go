package report

import (
	"fmt"
	"strings"

	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/models"
)

const ruleWidth = 80

// RenderText produces the plain-text export: header banner, personal-info lines,
// then every category with numbered items. Unanswered items print a literal
// "Not answered". The format matches the original assessment app's download.
func RenderText(session *models.Session) string {
	var b strings.Builder

	b.WriteString(documentTitle + "\n")
	b.WriteString(documentSubtitle + "\n\n")
	fmt.Fprintf(&b, "Name: %s\n", session.Name)
	fmt.Fprintf(&b, "Date of Birth: %s\n", session.DateOfBirth)
	fmt.Fprintf(&b, "Assessment Date: %s\n", session.AssessmentDate)
	fmt.Fprintf(&b, "Completed By: %s\n", session.CompletedBy)
	if session.AdditionalInfo != "" {
		fmt.Fprintf(&b, "Additional Information: %s\n", session.AdditionalInfo)
	}
	b.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n\n")

	for _, category := range catalogue.Categories() {
		b.WriteString(strings.ToUpper(category.Title) + "\n")
		b.WriteString(category.Subtitle + "\n")
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n\n")

		for i, item := range category.Items {
			record := session.Responses[category.Key(i)]
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.Prompt)
			fmt.Fprintf(&b, "   Examples: %s\n", item.Examples)
			response := "Not answered"
			if record.Selection.Valid() {
				response = record.Selection.Label()
			}
			fmt.Fprintf(&b, "   Response: %s\n", response)
			if record.Notes != "" {
				fmt.Fprintf(&b, "   Notes: %s\n", record.Notes)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
