package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/linkscout/linkscout/config"
	"github.com/linkscout/linkscout/linkedin"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *linkedin.Client

	version   = "dev"
	buildTime = "unknown"

	// Shared pagination flags
	pageStart  int
	pageCount  int
	pageCursor string
)

// SetVersion sets the version information from build-time variables
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "linkscout",
	Short: "Query professional-network profile, company, job, and content data",
	Long: `linkscout is a CLI for the LinkScout data API. It fetches member
profiles, companies, job postings, and posts, and can narrow search
results with filter expressions.`,
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
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	opts := []linkedin.Option{
		linkedin.WithTimeout(cfg.LinkedIn.Timeout),
		linkedin.WithMaxRetries(cfg.LinkedIn.MaxRetries),
		linkedin.WithRetryDelay(cfg.LinkedIn.RetryDelay),
		linkedin.WithUserAgent("linkscout/" + version),
	}
	if cfg.LinkedIn.BaseURL != "" {
		opts = append(opts, linkedin.WithBaseURL(cfg.LinkedIn.BaseURL))
	}

	client, err = linkedin.NewClient(cfg.LinkedIn.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create LinkScout client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when writing to a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// printJSON writes a fetched result to stdout as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// addPageFlags registers the shared pagination flags on a subcommand
func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&pageStart, "start", 0, "pagination offset")
	cmd.Flags().IntVar(&pageCount, "count", 0, "page size (server default when omitted)")
	cmd.Flags().StringVar(&pageCursor, "cursor", "", "pagination cursor from a previous response")
}

func pageOptions() linkedin.PageOptions {
	return linkedin.PageOptions{
		Start:  pageStart,
		Count:  pageCount,
		Cursor: pageCursor,
	}
}

// versionCmd prints the version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("linkscout %s (built %s)\n", version, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
