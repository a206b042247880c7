// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"embed"
	"encoding/base64"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/pdiddy/student-guidance/internal/logger"
	"github.com/pdiddy/student-guidance/internal/present"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"levelClass": func(l present.Level) string { return "msg msg-" + string(l) },
}).ParseFS(templateFS, "templates/*.html"))

const (
	tabCourses      = "courses"
	tabUniversities = "universities"
)

// pageData feeds page.html. A nil panel renders with no results.
type pageData struct {
	Tab          string
	Query        string
	Country      string
	Courses      *panel
	Universities *panel
}

type panel struct {
	present.View
	DownloadName string
	DownloadURL  template.URL
}

func newPanel(v present.View) *panel {
	p := &panel{View: v}
	if v.Export != nil {
		p.DownloadName = v.Export.Filename
		p.DownloadURL = template.URL("data:" + v.Export.MIMEType + ";charset=utf-8;base64," +
			base64.StdEncoding.EncodeToString(v.Export.Data))
	}
	return p
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, pageData{Tab: tabCourses})
}

func (s *Server) handleCoursesPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	v := present.Courses(r.Context(), s.courses, query)
	logFailures(r, "courses", v)
	s.renderPage(w, r, pageData{Tab: tabCourses, Query: query, Courses: newPanel(v)})
}

func (s *Server) handleUniversitiesPage(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	v := present.Universities(r.Context(), s.universities, country)
	logFailures(r, "universities", v)
	s.renderPage(w, r, pageData{Tab: tabUniversities, Country: country, Universities: newPanel(v)})
}

func (s *Server) handleCoursesCSV(w http.ResponseWriter, r *http.Request) {
	v := present.Courses(r.Context(), s.courses, r.URL.Query().Get("query"))
	logFailures(r, "courses", v)

	if v.Export == nil {
		status := http.StatusNotFound
		switch {
		case !v.Searched:
			status = http.StatusBadRequest
		case v.HasError():
			status = http.StatusBadGateway
		}
		http.Error(w, joinMessages(v), status)
		return
	}

	w.Header().Set("Content-Type", v.Export.MIMEType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+v.Export.Filename+`"`)
	if _, err := w.Write(v.Export.Data); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("writing CSV")
	}
}

func (s *Server) handleCoursesAPI(w http.ResponseWriter, r *http.Request) {
	v := present.Courses(r.Context(), s.courses, r.URL.Query().Get("query"))
	logFailures(r, "courses", v)
	writeView(w, r, v)
}

func (s *Server) handleUniversitiesAPI(w http.ResponseWriter, r *http.Request) {
	v := present.Universities(r.Context(), s.universities, r.URL.Query().Get("country"))
	logFailures(r, "universities", v)
	writeView(w, r, v)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("rendering page")
	}
}

// writeView encodes v as JSON. Validation failures map to 400 and upstream
// failures to 502; everything else, including empty results, is 200.
func writeView(w http.ResponseWriter, r *http.Request, v present.View) {
	status := http.StatusOK
	switch {
	case !v.Searched:
		status = http.StatusBadRequest
	case v.HasError():
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("encoding JSON view")
	}
}

func logFailures(r *http.Request, source string, v present.View) {
	if !v.Searched || !v.HasError() {
		return
	}
	for _, m := range v.Messages {
		if m.Level == present.LevelError {
			logger.C(r.Context()).Warn().Str("source", source).Msg(m.Text)
		}
	}
}

func joinMessages(v present.View) string {
	texts := make([]string, 0, len(v.Messages))
	for _, m := range v.Messages {
		texts = append(texts, m.Text)
	}
	return strings.Join(texts, "\n")
}
