package main

import (
	"net/http"

	"github.com/windgap/sensoryprofile/internal/analysis"
	"github.com/windgap/sensoryprofile/internal/models"
)

type assessmentTemplateData struct {
	BaseTemplateData

	Session    *models.Session
	Progress   int
	Guide      []models.SelectionGuide
	Categories []categoryView
}

func (app *application) assessment(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := assessmentTemplateData{
		BaseTemplateData: app.newBaseTemplateData(r),
		Session:          session,
		Progress:         analysis.Progress(session),
		Guide:            models.ResponseGuide(),
		Categories:       newCategoryViews(session),
	}

	app.render(w, r, http.StatusOK, "assessment", data)
}
