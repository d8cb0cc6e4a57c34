package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/filmgrid/filmgrid/catalog"
	"github.com/filmgrid/filmgrid/config"
	"github.com/filmgrid/filmgrid/tmdb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *tmdb.Client
	fetcher *catalog.Fetcher

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "filmgrid",
	Short: "Browse categorized TMDB movie lists from your terminal",
	Long: `filmgrid fetches the popular, top rated, upcoming and now playing movie
lists from The Movie Database (TMDB) and renders them as a grid in your
terminal, or serves them as JSON for a web front-end.`,
}

// SetVersion records the build metadata injected by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger and TMDB client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = tmdb.NewClient(cfg.TMDB.APIKey, logger,
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithTimeout(cfg.TMDB.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	fetcher = catalog.NewFetcher(client, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// stdoutIsTerminal reports whether grid output goes to an interactive
// terminal; piping disables color.
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// versionCmd prints the build metadata
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("filmgrid %s (built %s)\n", appVersion, appBuildTime)
	},
}
