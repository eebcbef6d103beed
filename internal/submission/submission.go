// Package submission validates a finished assessment and builds the prefilled
// email handoff. Nothing here sends anything: the contract ends at producing the
// mailto link for an external composer.
package submission

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/models"
)

// ErrMissingName blocks submission until the subject name has been entered.
var ErrMissingName = errors.NewSentinel("subject name is required before submission")

// IncompleteError blocks submission while catalogue items remain unanswered. It
// carries the unanswered count and the distinct titles of the categories
// containing them, in catalogue order.
type IncompleteError struct {
	Unanswered     int
	CategoryTitles []string
}

func (e *IncompleteError) Error() string {
	noun := "items"
	if e.Unanswered == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%d %s unanswered in: %s", e.Unanswered, noun, strings.Join(e.CategoryTitles, ", "))
}

// Validate checks that the session is ready for submission: the subject name is
// present and every catalogue item has an answer. It never mutates the session.
func Validate(session *models.Session) error {
	if strings.TrimSpace(session.Name) == "" {
		return ErrMissingName
	}

	incomplete := IncompleteError{}
	for _, category := range catalogue.Categories() {
		unansweredInCategory := 0
		for _, key := range category.Keys() {
			if !session.IsAnswered(key) {
				unansweredInCategory++
			}
		}
		if unansweredInCategory > 0 {
			incomplete.Unanswered += unansweredInCategory
			incomplete.CategoryTitles = append(incomplete.CategoryTitles, category.Title)
		}
	}
	if incomplete.Unanswered > 0 {
		return &incomplete
	}

	return nil
}

// MailtoLink builds the prefilled message-composition link: recipient, a subject
// line naming the subject and assessment date, and a short plain-text summary
// with the completed-item count in the body.
func MailtoLink(session *models.Session, recipient string) string {
	name := session.Name
	if strings.TrimSpace(name) == "" {
		name = "Unnamed"
	}
	subject := fmt.Sprintf("Sensory Assessment - %s - %s", name, session.AssessmentDate)

	lines := []string{
		"Comprehensive Sensory Profile Assessment",
		"",
		fmt.Sprintf("Name: %s", session.Name),
		fmt.Sprintf("Date of Birth: %s", session.DateOfBirth),
		fmt.Sprintf("Assessment Date: %s", session.AssessmentDate),
		fmt.Sprintf("Completed By: %s", session.CompletedBy),
	}
	if session.AdditionalInfo != "" {
		lines = append(lines, fmt.Sprintf("Additional Information: %s", session.AdditionalInfo))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Completed: %d items", session.AnsweredCount()),
		"",
		"Please see attached assessment results.",
	)
	body := strings.Join(lines, "\r\n")

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", recipient, escape(subject), escape(body))
}

// escape percent-encodes for a mailto URL. url.QueryEscape encodes spaces as '+',
// which mail clients do not decode, so those become %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
