package main

import (
	"log/slog"
	"net/http"

	"github.com/windgap/sensoryprofile/internal/analysis"
	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/models"
)

type answerResponseData struct {
	Item     itemView
	Progress int
}

// answer toggles the selection of one item. htmx requests get back the refreshed
// item fragment with an out-of-band progress bar update; plain form posts are
// redirected to the assessment page.
func (app *application) answer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	itemKey := r.PostForm.Get("item")
	category, _, err := catalogue.Lookup(itemKey)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	selection, ok := models.ParseSelection(r.PostForm.Get("selection"))
	if !ok {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	session, err := app.sessions.Load(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	session.SetSelection(itemKey, selection)
	if err = app.sessions.Save(r.Context(), session); err != nil {
		app.serverError(w, r, errors.Wrap(err, "save answer", slog.String("item", itemKey)))
		return
	}

	h := app.htmx.NewHandler(w, r)
	if !h.IsHxRequest() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	index := itemIndex(category, itemKey)
	data := answerResponseData{
		Item:     newItemView(category, index, session),
		Progress: analysis.Progress(session),
	}
	app.renderPartial(w, r, http.StatusOK, "assessment", "answer-response", data)
}

func itemIndex(category catalogue.Category, itemKey string) int {
	for i := range category.Items {
		if category.Key(i) == itemKey {
			return i
		}
	}
	return 0
}
