// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/student-guidance/internal/httputil"
	"github.com/pdiddy/student-guidance/internal/present"
	"github.com/pdiddy/student-guidance/internal/search"
)

var universitiesCmd = &cobra.Command{
	Use:   "universities [country]",
	Short: "List universities in a country",
	Long: `Universities looks up a country in the Hipolabs university directory and
prints each university's name, country, state or province, and websites.`,
	RunE: runUniversities,
}

func runUniversities(cmd *cobra.Command, args []string) error {
	country, _ := cmd.Flags().GetString("country")
	if country == "" {
		country = strings.Join(args, " ")
	}
	format, _ := cmd.Flags().GetString("format")
	if err := validFormat(format, formatTable, formatJSON, formatYAML); err != nil {
		return err
	}

	_, universities := search.NewBackends(appConfig, httputil.NewClient(appConfig.HTTP))
	v := present.Universities(cmd.Context(), universities, country)
	return writeView(cmd.OutOrStdout(), cmd.ErrOrStderr(), v, format)
}

func init() {
	universitiesCmd.Flags().String("country", "", "country name (e.g. India, United States, Canada)")
	universitiesCmd.Flags().String("format", formatTable, "output format: table, json, yaml")

	rootCmd.AddCommand(universitiesCmd)
}
