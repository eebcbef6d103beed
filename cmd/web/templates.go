package main

import (
	"net/http"

	"github.com/windgap/sensoryprofile/internal/catalogue"
	"github.com/windgap/sensoryprofile/internal/models"
)

type BaseTemplateData struct {
	Flash string
}

func (app *application) newBaseTemplateData(r *http.Request) BaseTemplateData {
	return BaseTemplateData{
		Flash: app.sessionManager.PopString(r.Context(), "flash"),
	}
}

// itemView is the render model for one catalogue item together with its current response.
type itemView struct {
	Key        string
	Ordinal    int
	Prompt     string
	Examples   string
	Selection  models.Selection
	Notes      string
	Selections []models.Selection
}

type categoryView struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Items       []itemView
}

func newItemView(category catalogue.Category, index int, session *models.Session) itemView {
	item := category.Items[index]
	key := category.Key(index)
	record := session.Responses[key]
	return itemView{
		Key:        key,
		Ordinal:    index + 1,
		Prompt:     item.Prompt,
		Examples:   item.Examples,
		Selection:  record.Selection,
		Notes:      record.Notes,
		Selections: models.Selections(),
	}
}

func newCategoryViews(session *models.Session) []categoryView {
	categories := catalogue.Categories()
	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		view := categoryView{
			ID:          category.ID,
			Title:       category.Title,
			Subtitle:    category.Subtitle,
			Description: category.Description,
			Items:       make([]itemView, 0, len(category.Items)),
		}
		for i := range category.Items {
			view.Items = append(view.Items, newItemView(category, i, session))
		}
		views = append(views, view)
	}
	return views
}
