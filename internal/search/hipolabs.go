// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/student-guidance/internal/httputil"
	"github.com/pdiddy/student-guidance/pkg/types"
)

// hipolabsSearchBase is the Hipolabs university directory endpoint.
var hipolabsSearchBase = "http://universities.hipolabs.com/search"

// HipolabsBackend queries the Hipolabs university directory.
type HipolabsBackend struct {
	Client *http.Client
	// BaseURL overrides hipolabsSearchBase when set.
	BaseURL   string
	UserAgent string
}

// Name returns the backend identifier.
func (b *HipolabsBackend) Name() string { return "hipolabs" }

// SearchUniversities lists the universities the directory holds for country.
func (b *HipolabsBackend) SearchUniversities(ctx context.Context, country string) ([]types.UniversityRecord, error) {
	if IsBlank(country) {
		return nil, ErrEmptyQuery
	}

	base := b.BaseURL
	if base == "" {
		base = hipolabsSearchBase
	}
	reqURL := base + "?country=" + httputil.RequoteQuery(country)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	var resp []hipolabsUniversity
	if err := httputil.GetJSON(ctx, client, reqURL, b.UserAgent, &resp); err != nil {
		return nil, fmt.Errorf("Hipolabs API request: %w", err)
	}
	return normalizeUniversities(resp), nil
}

func normalizeUniversities(resp []hipolabsUniversity) []types.UniversityRecord {
	out := make([]types.UniversityRecord, 0, len(resp))
	for _, u := range resp {
		out = append(out, types.UniversityRecord{
			Name:          u.Name,
			Country:       u.Country,
			StateProvince: u.StateProvince,
			Website:       strings.Join(u.WebPages, ", "),
		})
	}
	return out
}

// hipolabsUniversity is one directory entry. The API returns a bare list of
// these with no wrapper object.
type hipolabsUniversity struct {
	Name          *string  `json:"name"`
	Country       *string  `json:"country"`
	StateProvince *string  `json:"state-province"`
	WebPages      []string `json:"web_pages"`
}
