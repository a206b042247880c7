// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package present turns search results into a render model: ordered
// advisories, a table, and (for courses) a CSV export. The functions here
// hold no state; the web and CLI surfaces own display.
package present

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/student-guidance/internal/search"
	"github.com/pdiddy/student-guidance/pkg/types"
)

// Level is the severity of an advisory message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Message is one user-facing advisory.
type Message struct {
	Level Level  `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Table is a rendered result grid.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Export is a downloadable encoding of the table.
type Export struct {
	Filename string `json:"filename" yaml:"filename"`
	MIMEType string `json:"mime_type" yaml:"mime_type"`
	Data     []byte `json:"-" yaml:"-"`
}

// View is the render model for one panel after one user action.
type View struct {
	Messages []Message `json:"messages" yaml:"messages"`
	Count    int       `json:"count" yaml:"count"`
	Table    *Table    `json:"table,omitempty" yaml:"table,omitempty"`
	Export   *Export   `json:"-" yaml:"-"`

	// Searched is false when input validation stopped the action before
	// any request was made.
	Searched bool `json:"searched" yaml:"searched"`
}

// HasError reports whether any advisory is error level.
func (v View) HasError() bool {
	for _, m := range v.Messages {
		if m.Level == LevelError {
			return true
		}
	}
	return false
}

func (v *View) add(level Level, format string, args ...any) {
	v.Messages = append(v.Messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}

// Course panel advisories.
const (
	msgEmptyQuery = "Please enter a valid query."
	msgScraping   = "Scraping Coursera..."
	msgNoCourses  = "No courses found. Try a different query."
)

// Courses runs one course search and builds the course panel. A fetch
// failure is reported and then handled like an empty result.
func Courses(ctx context.Context, b search.CourseBackend, query string) View {
	var v View
	if search.IsBlank(query) {
		v.add(LevelError, msgEmptyQuery)
		return v
	}
	v.Searched = true
	v.add(LevelInfo, msgScraping)

	records, err := b.SearchCourses(ctx, query)
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			v.add(LevelError, msgEmptyQuery)
			return v
		}
		v.add(LevelError, "Error during scraping: %v", err)
		records = nil
	}

	if len(records) == 0 {
		v.add(LevelWarning, msgNoCourses)
		return v
	}

	data, err := EncodeCoursesCSV(records)
	if err != nil {
		v.add(LevelError, "Error encoding CSV: %v", err)
	} else {
		v.Export = &Export{Filename: "courses.csv", MIMEType: "text/csv", Data: data}
	}

	v.Count = len(records)
	v.add(LevelSuccess, "Found %d courses!", v.Count)
	v.Table = courseTable(records)
	return v
}

// University panel advisories.
const (
	msgEmptyCountry   = "Please enter a country name."
	msgNoUniversities = "No universities found for this country."
)

// Universities runs one directory search and builds the university panel.
func Universities(ctx context.Context, b search.UniversityBackend, country string) View {
	var v View
	if search.IsBlank(country) {
		v.add(LevelWarning, msgEmptyCountry)
		return v
	}
	v.Searched = true

	records, err := b.SearchUniversities(ctx, country)
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			v.add(LevelWarning, msgEmptyCountry)
			return v
		}
		v.add(LevelError, "Error fetching universities: %v", err)
		return v
	}

	if len(records) == 0 {
		v.add(LevelInfo, msgNoUniversities)
		return v
	}

	v.Count = len(records)
	v.add(LevelInfo, "Found %d universities in %s:", v.Count, country)
	v.Table = universityTable(records)
	return v
}

func courseTable(records []types.CourseRecord) *Table {
	t := &Table{Columns: types.CourseColumns, Rows: make([][]string, 0, len(records))}
	for _, r := range records {
		t.Rows = append(t.Rows, r.Row())
	}
	return t
}

func universityTable(records []types.UniversityRecord) *Table {
	t := &Table{Columns: types.UniversityColumns, Rows: make([][]string, 0, len(records))}
	for _, r := range records {
		t.Rows = append(t.Rows, r.Row())
	}
	return t
}
