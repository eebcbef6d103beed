package main

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/justinas/nosurf"
	"github.com/windgap/sensoryprofile/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Debug(http.StatusText(status), "method", method, "uri", uri, slog.Any("formdata", r.Form))
	http.Error(w, http.StatusText(status), status)
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to a directory inside ui/templates/pages. It has to include a template named "page".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	files := []string{
		"ui/templates/base.gohtml",
	}

	pageTemplateFiles, err := filepath.Glob(fmt.Sprintf("ui/templates/pages/%s/*.gohtml", pageName))
	if err != nil {
		return nil, errors.Wrap(err, "glob page template files")
	}
	files = append(files, pageTemplateFiles...)

	// The csrf function is overridden with the request token in render.
	return template.New(pageName).Funcs(template.FuncMap{
		"csrf": func() template.HTML {
			panic("not implemented")
		},
	}).ParseFiles(files...)
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, file string, data any) {
	var (
		err error
		t   *template.Template
	)

	if t, err = app.pageTemplate(file); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template", slog.String("template", file)))
		return
	}

	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", nosurf.Token(r))
	t.Funcs(template.FuncMap{
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // the token comes from nosurf, not from user input.
		},
	})

	buf := new(bytes.Buffer)
	if err = t.ExecuteTemplate(buf, "base", data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("template", file)))
		return
	}

	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}

// renderPartial executes a single named template from the page's template set,
// without the base layout. Used for htmx fragment responses.
func (app *application) renderPartial(w http.ResponseWriter, r *http.Request, status int, pageName, templateName string, data any) {
	var (
		err error
		t   *template.Template
	)

	if t, err = app.pageTemplate(pageName); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template", slog.String("template", pageName)))
		return
	}

	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", nosurf.Token(r))
	t.Funcs(template.FuncMap{
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // the token comes from nosurf, not from user input.
		},
	})

	buf := new(bytes.Buffer)
	if err = t.ExecuteTemplate(buf, templateName, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("template", templateName)))
		return
	}

	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}
