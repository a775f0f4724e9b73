package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/cutline/internal/config"
	cuterrors "github.com/tessro/cutline/internal/errors"
	"github.com/tessro/cutline/internal/logging"
	"github.com/tessro/cutline/internal/timeline"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cutline",
	Short: "Edit and play back scene timelines from the terminal",
	Long: `Cutline is a timeline editor for sequences of timed scenes.

Add, reorder and resize scenes, scrub the playhead, and undo or redo every
edit, either in the interactive editor (cutline ui) or from scripts
(cutline edit).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.cutlinerc)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// newLogger builds the logger from the [log] section. --verbose forces debug.
func newLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	lc := cfg.Log
	if verbose {
		lc.Level = "debug"
	}
	return logging.New(lc, fallback)
}

// newEngine builds a timeline engine from the loaded configuration.
func newEngine(logger *slog.Logger) *timeline.Engine {
	opts := append(cfg.EngineOptions(nil), timeline.WithLogger(logger))
	return timeline.New(opts...)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cuterrors.Format(err))
		os.Exit(1)
	}
}

// Config returns the loaded configuration.
func Config() *config.Config {
	return cfg
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
