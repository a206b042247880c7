// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/student-guidance/internal/httputil"
	"github.com/pdiddy/student-guidance/internal/search"
	"github.com/pdiddy/student-guidance/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser UI",
	Long: `Serve starts an HTTP server with two tabs: "Find Online Courses" and
"Find Universities by Country". Course results can be downloaded as CSV.
The same lookups are available as JSON under /api/courses and
/api/universities.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		courses, universities := search.NewBackends(cfg, httputil.NewClient(cfg.HTTP))
		return web.NewServer(cfg.Server, courses, universities).Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")

	rootCmd.AddCommand(serveCmd)
}
