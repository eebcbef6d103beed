package main

import (
	"net/http"

	"github.com/windgap/sensoryprofile/internal/errors"
)

// updateDetails saves the subject metadata fields and confirms with a flash message.
func (app *application) updateDetails(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	session, err := app.sessions.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	session.Name = r.PostForm.Get("name")
	session.DateOfBirth = r.PostForm.Get("dob")
	if date := r.PostForm.Get("assessmentDate"); date != "" {
		session.AssessmentDate = date
	}
	session.CompletedBy = r.PostForm.Get("completedBy")
	session.AdditionalInfo = r.PostForm.Get("additionalInfo")

	if err = app.sessions.Save(r.Context(), session); err != nil {
		app.serverError(w, r, errors.Wrap(err, "save details"))
		return
	}

	app.sessionManager.Put(r.Context(), "flash", "Assessment saved successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
