package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-articlegen/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "articlegen",
	Short: "Fill scientific article templates and export standalone HTML",
	Long: `articlegen loads an HTML/CSS article template, fills its placeholder
regions and exports a self-contained HTML document. Regions can be edited
through a local web editor (serve), answered interactively (fill) or read
from a JSON/YAML document (assemble).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "articlegen: ", log.LstdFlags)
}
