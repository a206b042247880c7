// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the course catalog and university directory APIs
// and normalizes their JSON responses into fixed-column records.
//
// Each backend issues exactly one GET per call. Blank input is rejected
// before any request is made.
package search

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pdiddy/student-guidance/pkg/types"
)

// ErrEmptyQuery is returned when the query or country is blank.
var ErrEmptyQuery = errors.New("query is empty")

// CourseBackend searches a course catalog.
type CourseBackend interface {
	Name() string
	SearchCourses(ctx context.Context, query string) ([]types.CourseRecord, error)
}

// UniversityBackend searches a university directory by country.
type UniversityBackend interface {
	Name() string
	SearchUniversities(ctx context.Context, country string) ([]types.UniversityRecord, error)
}

// IsBlank reports whether s has no non-whitespace characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NewBackends builds both backends from cfg, sharing one client.
func NewBackends(cfg types.Config, client *http.Client) (*CourseraBackend, *HipolabsBackend) {
	courses := &CourseraBackend{
		Client:    client,
		BaseURL:   cfg.Courses.BaseURL,
		UserAgent: cfg.HTTP.UserAgent,
	}
	universities := &HipolabsBackend{
		Client:    client,
		BaseURL:   cfg.Universities.BaseURL,
		UserAgent: cfg.HTTP.UserAgent,
	}
	return courses, universities
}

// optional returns *p, or fallback when p is nil.
func optional(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
