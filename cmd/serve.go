package cmd

import (
	"github.com/spf13/cobra"

	"github.com/filmgrid/filmgrid/server"
)

var listenAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve movie lists as a JSON API",
	Long: `Start an HTTP server exposing the movie lists, images configuration and
supported languages as JSON, with CORS enabled for web front-ends.

Endpoints:
  GET /api/movies/{category}   one page of a movie list (?page=N)
  GET /api/configuration       TMDB images configuration
  GET /api/languages           supported ISO 639-1 language codes`,
	PreRunE: initializeApp,
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Listen
	if listenAddr != "" {
		addr = listenAddr
	}

	srv := server.New(client, logger, cfg.Server.AllowedOrigins)
	return srv.ListenAndServe(addr)
}
