package main

import (
	"net/http"

	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/submission"
)

type submitTemplateData struct {
	BaseTemplateData

	Blocked    string
	MailtoLink string
}

// submit validates the assessment and, when it is complete, presents the
// prefilled email link. Incomplete assessments get a message naming the
// unanswered count and the categories containing them.
func (app *application) submit(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := submitTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
	}

	if err = submission.Validate(session); err != nil {
		var incomplete *submission.IncompleteError
		switch {
		case errors.Is(err, submission.ErrMissingName):
			data.Blocked = "Please enter the name before sending the assessment."
		case errors.As(err, &incomplete):
			data.Blocked = "The assessment is not finished yet: " + incomplete.Error() + "."
		default:
			app.serverError(w, r, err)
			return
		}
	} else {
		data.MailtoLink = submission.MailtoLink(session, app.recipient)
	}

	app.render(w, r, http.StatusOK, "submit", data)
}

// healthy responds with a JSON object indicating that the server is healthy.
func (app *application) healthy(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
