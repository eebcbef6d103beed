package submission

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/models"
)

// completedSession answers every catalogue item.
func completedSession(t *testing.T) *models.Session {
	t.Helper()
	session := models.NewSession(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	session.Name = "Alex Example"
	for _, key := range catalogue.AllKeys() {
		session.SetSelection(key, models.SelectionNeutral)
	}
	return session
}

func TestValidateMissingName(t *testing.T) {
	session := completedSession(t)
	session.Name = "   "

	err := Validate(session)
	require.ErrorIs(t, err, ErrMissingName)
}

func TestValidateIncomplete(t *testing.T) {
	session := completedSession(t)
	categories := catalogue.Categories()

	// Clear two answers in the first category and one in the last.
	session.SetSelection(categories[0].Key(0), models.SelectionNeutral)
	session.SetSelection(categories[0].Key(1), models.SelectionNeutral)
	last := categories[len(categories)-1]
	session.SetSelection(last.Key(0), models.SelectionNeutral)

	err := Validate(session)
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 3, incomplete.Unanswered)
	assert.Equal(t, []string{categories[0].Title, last.Title}, incomplete.CategoryTitles)
	assert.Equal(t,
		"3 items unanswered in: "+categories[0].Title+", "+last.Title,
		incomplete.Error())
}

func TestIncompleteErrorSingular(t *testing.T) {
	err := &IncompleteError{Unanswered: 1, CategoryTitles: []string{"Auditory System"}}
	assert.Equal(t, "1 item unanswered in: Auditory System", err.Error())
}

func TestValidateComplete(t *testing.T) {
	require.NoError(t, Validate(completedSession(t)))
}

func TestMailtoLink(t *testing.T) {
	session := completedSession(t)
	session.DateOfBirth = "2018-06-01"
	session.CompletedBy = "Parent"

	link := MailtoLink(session, "assessor@example.com")

	require.True(t, strings.HasPrefix(link, "mailto:assessor@example.com?subject="))
	// Mail clients do not decode '+' as a space, so spaces must be %20.
	assert.NotContains(t, link, "+")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "Sensory Assessment - Alex Example - 2025-03-14", query.Get("subject"))

	body := query.Get("body")
	assert.True(t, strings.HasPrefix(body, "Comprehensive Sensory Profile Assessment\r\n"))
	assert.Contains(t, body, "Name: Alex Example\r\n")
	assert.Contains(t, body, "Date of Birth: 2018-06-01\r\n")
	assert.Contains(t, body, "Completed By: Parent\r\n")
	assert.Contains(t, body, "Completed: 105 items\r\n")
	assert.Contains(t, body, "Please see attached assessment results.")
	assert.NotContains(t, body, "Additional Information:")
}

func TestMailtoLinkUnnamedSubject(t *testing.T) {
	session := models.NewSession(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	link := MailtoLink(session, "assessor@example.com")
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Sensory Assessment - Unnamed - 2025-03-14", parsed.Query().Get("subject"))
}
