// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/student-guidance/internal/httputil"
	"github.com/pdiddy/student-guidance/internal/present"
	"github.com/pdiddy/student-guidance/internal/search"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [query]",
	Short: "Search the Coursera catalog for online courses",
	Long: `Courses runs one Coursera catalog search and prints the matching courses
with their platform, title, URL, and price. Use --format csv to export the
results as CSV.`,
	RunE: runCourses,
}

func runCourses(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		query = strings.Join(args, " ")
	}
	format, _ := cmd.Flags().GetString("format")
	if err := validFormat(format, formatTable, formatJSON, formatYAML, formatCSV); err != nil {
		return err
	}

	courses, _ := search.NewBackends(appConfig, httputil.NewClient(appConfig.HTTP))
	v := present.Courses(cmd.Context(), courses, query)
	return writeView(cmd.OutOrStdout(), cmd.ErrOrStderr(), v, format)
}

func init() {
	coursesCmd.Flags().String("query", "", "what you want to learn (e.g. \"Data Science\")")
	coursesCmd.Flags().String("format", formatTable, "output format: table, json, yaml, csv")

	rootCmd.AddCommand(coursesCmd)
}
