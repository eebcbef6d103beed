package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir("./ui/static/"))
	mux.Handle("GET /static/", cacheForeverHeaders(http.StripPrefix("/static", fileServer)))

	session := alice.New(app.sessionManager.LoadAndSave, noSurf)

	mux.Handle("GET /{$}", session.ThenFunc(app.assessment))
	mux.Handle("POST /details", session.ThenFunc(app.updateDetails))
	mux.Handle("POST /answer", session.ThenFunc(app.answer))
	mux.Handle("POST /notes", session.ThenFunc(app.notes))
	mux.Handle("POST /dictate", session.ThenFunc(app.dictate))
	mux.Handle("GET /export/text", session.ThenFunc(app.exportText))
	mux.Handle("GET /export/pdf", session.ThenFunc(app.exportPDF))
	mux.Handle("POST /submit", session.ThenFunc(app.submit))

	mux.HandleFunc("GET /api/healthy", app.healthy)

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
