package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/windgap/sensoryprofile/internal/report"
)

// exportText downloads the plain-text report.
func (app *application) exportText(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.Filename(session, "txt")))
	_, _ = w.Write([]byte(report.RenderText(session)))
}

// exportPDF downloads the paginated PDF report.
func (app *application) exportPDF(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessions.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	// Render into a buffer first so a failure can still produce an error response.
	var buf bytes.Buffer
	if err = report.RenderPDF(report.Build(session), &buf); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.Filename(session, "pdf")))
	_, _ = buf.WriteTo(w)
}
