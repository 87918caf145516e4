package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/lifex/internal/server"
)

const defaultAddr = ":8080"

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimator as a JSON HTTP API",
		Long: `Serve the estimator over HTTP. Without --addr the PORT environment
variable picks the port, falling back to 8080.

Endpoints:
  GET  /healthz
  GET  /v1/factors
  POST /v1/life-expectancy
  POST /v1/compare
  POST /v1/suggestions?top=N
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := resolveAddr(cmd)
			debugMode, _ := cmd.Flags().GetBool("debug")

			engine := newEngine(cmd)
			srv := server.New(engine, simpleCLILogger{debug: debugMode})

			return srv.ListenAndServe(addr)
		},
	}
	cmd.Flags().String("addr", defaultAddr, "Listen address")
	return cmd
}

// resolveAddr prefers an explicit --addr, then $PORT, then the default
func resolveAddr(cmd *cobra.Command) string {
	addr, _ := cmd.Flags().GetString("addr")
	if cmd.Flags().Changed("addr") {
		return addr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return addr
}
