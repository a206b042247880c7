// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for student-guidance.
// Records are the fixed-column rows produced by the search backends and
// rendered by the presenter; config structs are unmarshalled by viper.
package types

// Course row constants. Every CourseRecord carries the same platform and
// price description.
const (
	CourseraPlatform   = "Coursera"
	CourseraLearnBase  = "https://www.coursera.org/learn/"
	CourseraPriceLabel = "Free to audit / Paid for certificate"

	// MissingTitle fills Title when the catalog omits a course name.
	MissingTitle = "N/A"
)

// CourseColumns is the column order of CourseRecord in tables and CSV.
var CourseColumns = []string{"Platform", "Title", "URL", "Price"}

// CourseRecord is one course row from the course catalog.
type CourseRecord struct {
	Platform string `json:"Platform" yaml:"Platform"`
	Title    string `json:"Title" yaml:"Title"`
	URL      string `json:"URL" yaml:"URL"`
	Price    string `json:"Price" yaml:"Price"`
}

// Row returns the record's cells in CourseColumns order.
func (r CourseRecord) Row() []string {
	return []string{r.Platform, r.Title, r.URL, r.Price}
}

// UniversityColumns is the column order of UniversityRecord in tables.
var UniversityColumns = []string{"Name", "Country", "State/Province", "Website"}

// UniversityRecord is one university row from the directory. Name, Country
// and StateProvince are nil when the directory omits them (or sends null).
type UniversityRecord struct {
	Name          *string `json:"Name" yaml:"Name"`
	Country       *string `json:"Country" yaml:"Country"`
	StateProvince *string `json:"State/Province" yaml:"State/Province"`

	// Website is the directory's web_pages list joined with ", ".
	Website string `json:"Website" yaml:"Website"`
}

// Row returns the record's cells in UniversityColumns order. Absent
// values render as empty cells.
func (r UniversityRecord) Row() []string {
	return []string{deref(r.Name), deref(r.Country), deref(r.StateProvince), r.Website}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
