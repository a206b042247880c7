// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pdiddy/student-guidance/internal/httputil"
	"github.com/pdiddy/student-guidance/pkg/types"
)

// courseraSearchBase is the Coursera courses endpoint. Declared as a var so
// tests can substitute an httptest server.
var courseraSearchBase = "https://api.coursera.org/api/courses.v1"

// CourseraBackend queries the Coursera catalog search.
type CourseraBackend struct {
	Client *http.Client
	// BaseURL overrides courseraSearchBase when set.
	BaseURL   string
	UserAgent string
}

// Name returns the backend identifier.
func (b *CourseraBackend) Name() string { return "coursera" }

// SearchCourses runs one catalog search and returns a record per element.
// The query is interpolated into the URL as typed; reserved characters such
// as "&" and "#" keep their URL meaning.
func (b *CourseraBackend) SearchCourses(ctx context.Context, query string) ([]types.CourseRecord, error) {
	if IsBlank(query) {
		return nil, ErrEmptyQuery
	}

	var resp courseraResponse
	if err := httputil.GetJSON(ctx, b.client(), b.searchURL(query), b.UserAgent, &resp); err != nil {
		return nil, fmt.Errorf("Coursera API request: %w", err)
	}
	return normalizeCourses(resp), nil
}

func (b *CourseraBackend) searchURL(query string) string {
	base := b.BaseURL
	if base == "" {
		base = courseraSearchBase
	}
	return base + "?q=search&query=" + httputil.RequoteQuery(query)
}

func (b *CourseraBackend) client() *http.Client {
	if b.Client == nil {
		return http.DefaultClient
	}
	return b.Client
}

// normalizeCourses maps catalog elements to course rows. A missing name
// becomes "N/A"; a missing slug yields the bare learn URL.
func normalizeCourses(resp courseraResponse) []types.CourseRecord {
	courses := make([]types.CourseRecord, 0, len(resp.Elements))
	for _, el := range resp.Elements {
		courses = append(courses, types.CourseRecord{
			Platform: types.CourseraPlatform,
			Title:    optional(el.Name, types.MissingTitle),
			URL:      types.CourseraLearnBase + optional(el.Slug, ""),
			Price:    types.CourseraPriceLabel,
		})
	}
	return courses
}

// Coursera API JSON structures. Every field is optional.
type courseraResponse struct {
	Elements []courseraElement `json:"elements"`
}

type courseraElement struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}
