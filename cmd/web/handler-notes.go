package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/transcript"
)

// notes replaces the notes of one item verbatim. The selection is never touched.
func (app *application) notes(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	itemKey := r.PostForm.Get("item")
	if _, _, err := catalogue.Lookup(itemKey); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	session, err := app.sessions.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	session.SetNotes(itemKey, r.PostForm.Get("notes"))
	if err = app.sessions.Save(r.Context(), session); err != nil {
		app.serverError(w, r, errors.Wrap(err, "save notes", slog.String("item", itemKey)))
		return
	}

	h := app.htmx.NewHandler(w, r)
	if !h.IsHxRequest() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// dictate accepts an uploaded audio recording, transcribes it, and appends the
// transcript to the item's notes. When no transcription capability is configured
// the user gets a notice and everything else keeps working.
func (app *application) dictate(w http.ResponseWriter, r *http.Request) {
	const maxUpload = 32 << 20
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	itemKey := r.PostForm.Get("item")
	if _, _, err := catalogue.Lookup(itemKey); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	upload, header, err := r.FormFile("audio")
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	defer func() {
		_ = upload.Close()
	}()

	// The transcription API wants a file path, so the upload lands in a temp file.
	tmp, err := os.CreateTemp("", "sensory-dictation-*"+header.Filename)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "create temp audio file"))
		return
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err = io.Copy(tmp, upload); err != nil {
		app.serverError(w, r, errors.Wrap(err, "buffer uploaded audio"))
		return
	}
	if err = tmp.Close(); err != nil {
		app.serverError(w, r, errors.Wrap(err, "close temp audio file"))
		return
	}

	text, err := app.transcripts.Transcribe(r.Context(), tmp.Name())
	if errors.Is(err, transcript.ErrUnavailable) {
		app.sessionManager.Put(r.Context(), "flash", "Voice capture is not available on this system.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "transcribe audio", slog.String("item", itemKey)))
		return
	}

	session, err := app.sessions.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	session.AppendNotes(itemKey, text)
	if err = app.sessions.Save(r.Context(), session); err != nil {
		app.serverError(w, r, errors.Wrap(err, "save dictated notes", slog.String("item", itemKey)))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
