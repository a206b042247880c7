// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/student-guidance/internal/present"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatCSV   = "csv"
)

// errAdvised is returned after an error-level or validation advisory has
// been printed, so the command exits non-zero without repeating it.
var errAdvised = errors.New("lookup failed")

// writeView prints advisories to errw and the table to out in format.
func writeView(out, errw io.Writer, v present.View, format string) error {
	for _, m := range v.Messages {
		fmt.Fprintf(errw, "%s: %s\n", m.Level, m.Text)
	}

	switch format {
	case formatTable:
		if v.Table != nil {
			formatTableText(out, v.Table)
		}
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return err
		}
	case formatYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		if err := enc.Encode(v); err != nil {
			return err
		}
	case formatCSV:
		if v.Export != nil {
			if _, err := out.Write(v.Export.Data); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if v.HasError() || !v.Searched {
		return errAdvised
	}
	return nil
}

// formatTableText writes t as aligned columns. Cells wider than maxCell
// runes are truncated.
func formatTableText(w io.Writer, t *present.Table) {
	const maxCell = 60

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if n := min(utf8.RuneCountInString(cell), maxCell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			cell = truncate(cell, maxCell)
			parts[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(t.Columns)
	total := 0
	for _, wd := range widths {
		total += wd
	}
	fmt.Fprintln(w, strings.Repeat("-", total+2*(len(widths)-1)))
	for _, row := range t.Rows {
		writeRow(row)
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}

func validFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported --format %q (want one of: %s)", format, strings.Join(allowed, ", "))
}
