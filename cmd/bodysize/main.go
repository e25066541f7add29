package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/bodysize/internal/config"
	"github.com/philipparndt/bodysize/internal/logging"
	"github.com/philipparndt/bodysize/version"
	"github.com/spf13/cobra"
)

var (
	envFile  string
	logLevel string
	logFile  string

	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "bodysize",
	Short: "Measure the size of Box2D bodies",
	Long: `bodysize builds Box2D bodies from a scene file and reports the width and
height of each body's collision geometry. Polygon, chain, edge and circle
fixtures are supported. Sizes can be scaled, e.g. to pixels per meter.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		file := cfg.LogFile
		if cmd.Flags().Changed("log-file") {
			file = logFile
		}

		logCloser = logging.Init(logging.Config{Level: level, File: file})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Environment file with BODYSIZE_* settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this rotating file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
