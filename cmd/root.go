package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lwagner94/fattrack/config"
	"github.com/lwagner94/fattrack/fatsecret"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *fatsecret.Client

	// Command flags
	filterExpr string
	preset     string

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fattrack",
	Short: "A tool to track foods, diary entries and weight via the FatSecret API",
	Long: `fattrack is a CLI for the FatSecret nutrition platform. It searches the
food and recipe databases, manages the food and exercise diaries of an
authorized profile and records weigh-ins.

Profile-bound commands require a one-time "authorize" run to obtain an
access token pair.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records the build information shown by --version and used by
// the update command.
func SetVersion(v, t string) {
	version = v
	buildTime = t
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, t)
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

	// Create the FatSecret client, resuming a stored session when available
	opts := []fatsecret.Option{}
	if cfg.FatSecret.HasAccessToken() {
		opts = append(opts, fatsecret.WithAccessToken(cfg.FatSecret.AccessToken, cfg.FatSecret.AccessSecret))
	}

	client, err = fatsecret.NewClient(cfg.FatSecret.ConsumerKey, cfg.FatSecret.ConsumerSecret, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create FatSecret client: %w", err)
	}

	if client.Authenticated() {
		logger.Debug().Msg("Resumed authorized FatSecret session")
	} else {
		logger.Debug().Msg("Using public FatSecret session")
	}

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

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines the filter expression to use, if any
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if presetFilter, ok := cfg.Filter.Presets[preset]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.DefaultExpression, nil
}

// requireAuthorized guards commands that need a profile-bound session.
func requireAuthorized() error {
	if !client.Authenticated() {
		return fmt.Errorf("this command requires an authorized session: run 'fattrack authorize' first")
	}
	return nil
}

// parseDateFlag parses a --date flag value; an empty value yields the zero
// time, which the client treats as the current day.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}
