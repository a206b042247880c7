// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pdiddy/student-guidance/pkg/types"
)

// WriteCoursesCSV writes a header row and one row per record, with no
// index column.
func WriteCoursesCSV(w io.Writer, records []types.CourseRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.CourseColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeCoursesCSV returns the UTF-8 CSV encoding of records.
func EncodeCoursesCSV(records []types.CourseRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCoursesCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
