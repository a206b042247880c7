// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"context"
	"encoding/json"
	"bytes"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/student-guidance/internal/logger"
	"github.com/pdiddy/student-guidance/internal/present"
	"github.com/pdiddy/student-guidance/pkg/types"
)

// --- mock backends ---

type mockCourses struct {
	results []types.CourseRecord
	err     error
	calls   int
}

func (m *mockCourses) Name() string { return "mock" }

func (m *mockCourses) SearchCourses(_ context.Context, _ string) ([]types.CourseRecord, error) {
	m.calls++
	return m.results, m.err
}

type mockUniversities struct {
	results []types.UniversityRecord
	err     error
}

func (m *mockUniversities) Name() string { return "mock" }

func (m *mockUniversities) SearchUniversities(_ context.Context, _ string) ([]types.UniversityRecord, error) {
	return m.results, m.err
}

func testServer(c *mockCourses, u *mockUniversities) *Server {
	cfg := types.DefaultConfig().Server
	cfg.Addr = "127.0.0.1:0"
	return NewServer(cfg, c, u)
}

func oneCourse() []types.CourseRecord {
	return []types.CourseRecord{{
		Platform: "Coursera",
		Title:    "Intro to X",
		URL:      "https://www.coursera.org/learn/intro-x",
		Price:    "Free to audit / Paid for certificate",
	}}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

// --- HTML pages ---

func TestIndexRendersBothTabs(t *testing.T) {
	s := testServer(&mockCourses{}, &mockUniversities{})
	rec := get(t, s.Handler(), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Find Online Courses")
	assert.Contains(t, body, "Find Universities by Country")
	assert.NotContains(t, body, "<table>")
}

func TestCoursesPageRendersTableAndDownload(t *testing.T) {
	s := testServer(&mockCourses{results: oneCourse()}, &mockUniversities{})
	rec := get(t, s.Handler(), "/courses?query=x")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Found 1 courses!")
	assert.Contains(t, body, "<td>Intro to X</td>")
	assert.Contains(t, body, "data:text/csv;charset=utf-8;base64,")
	assert.Contains(t, body, `download="courses.csv"`)
}

func TestCoursesPageBlankQuery(t *testing.T) {
	c := &mockCourses{results: oneCourse()}
	s := testServer(c, &mockUniversities{})
	rec := get(t, s.Handler(), "/courses?query=+++")

	assert.Equal(t, 0, c.calls)
	assert.Contains(t, rec.Body.String(), "Please enter a valid query.")
	assert.NotContains(t, rec.Body.String(), "<table>")
}

func TestCoursesPageUpstreamFailure(t *testing.T) {
	s := testServer(&mockCourses{err: errors.New("connection refused")}, &mockUniversities{})
	rec := get(t, s.Handler(), "/courses?query=go")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Error during scraping: connection refused")
	assert.Contains(t, body, "No courses found.")
	assert.NotContains(t, body, "Download Results as CSV")
}

func TestUniversitiesPageEmpty(t *testing.T) {
	s := testServer(&mockCourses{}, &mockUniversities{results: []types.UniversityRecord{}})
	rec := get(t, s.Handler(), "/universities?country=Atlantis")

	body := rec.Body.String()
	assert.Contains(t, body, "No universities found for this country.")
	assert.NotContains(t, body, "<table>")
	assert.NotContains(t, body, "Download Results as CSV")
}

func TestUniversitiesPageEscapesInput(t *testing.T) {
	s := testServer(&mockCourses{}, &mockUniversities{results: []types.UniversityRecord{{Website: "w"}}})
	rec := get(t, s.Handler(), "/universities?country=%3Cscript%3E")

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

// --- CSV download ---

func TestCoursesCSV(t *testing.T) {
	s := testServer(&mockCourses{results: oneCourse()}, &mockUniversities{})
	rec := get(t, s.Handler(), "/courses.csv?query=x")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="courses.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"Platform,Title,URL,Price\nCoursera,Intro to X,https://www.coursera.org/learn/intro-x,Free to audit / Paid for certificate\n",
		rec.Body.String())
}

func TestCoursesCSVStatuses(t *testing.T) {
	tests := []struct {
		name   string
		mock   *mockCourses
		target string
		want   int
	}{
		{"blank query", &mockCourses{}, "/courses.csv?query=", http.StatusBadRequest},
		{"upstream failure", &mockCourses{err: errors.New("boom")}, "/courses.csv?query=go", http.StatusBadGateway},
		{"no results", &mockCourses{}, "/courses.csv?query=go", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer(tt.mock, &mockUniversities{})
			rec := get(t, s.Handler(), tt.target)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

// --- JSON API ---

func TestCoursesAPI(t *testing.T) {
	s := testServer(&mockCourses{results: oneCourse()}, &mockUniversities{})
	rec := get(t, s.Handler(), "/api/courses?query=x")

	require.Equal(t, http.StatusOK, rec.Code)
	var v present.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, 1, v.Count)
	require.NotNil(t, v.Table)
	assert.Equal(t, "Intro to X", v.Table.Rows[0][1])
}

func TestUniversitiesAPIStatuses(t *testing.T) {
	s := testServer(&mockCourses{}, &mockUniversities{err: errors.New("HTTP 500")})

	assert.Equal(t, http.StatusBadRequest, get(t, s.Handler(), "/api/universities?country=").Code)
	assert.Equal(t, http.StatusBadGateway, get(t, s.Handler(), "/api/universities?country=Canada").Code)
}

func TestAPICORS(t *testing.T) {
	s := testServer(&mockCourses{}, &mockUniversities{})
	req := httptest.NewRequest(http.MethodGet, "/api/courses?query=go", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthz(t *testing.T) {
	s := testServer(&mockCourses{}, &mockUniversities{})
	assert.Equal(t, http.StatusOK, get(t, s.Handler(), "/healthz").Code)
}

// --- write failures ---

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	header http.Header
}

func (b *brokenWriter) Header() http.Header {
	if b.header == nil {
		b.header = http.Header{}
	}
	return b.header
}

func (b *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("client went away") }

func (b *brokenWriter) WriteHeader(int) {}

func TestWriteFailuresAreLogged(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"/courses.csv?query=x", "writing CSV"},
		{"/api/courses?query=x", "encoding JSON view"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var buf bytes.Buffer
			logger.Init(logger.Options{Level: "info", Format: "json", Writer: &buf})
			t.Cleanup(func() { logger.Init(logger.Options{Writer: io.Discard}) })

			s := testServer(&mockCourses{results: oneCourse()}, &mockUniversities{})
			s.Handler().ServeHTTP(&brokenWriter{}, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "client went away")
		})
	}
}

// --- lifecycle ---

func TestServeShutsDownOnCancel(t *testing.T) {
	s := testServer(&mockCourses{}, &mockUniversities{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
