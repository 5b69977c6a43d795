// Package main provides the resumeforge CLI: an interactive resume form,
// scripted replays of form input, and inspection of exported PDFs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resumeforge/internal/config"
	"github.com/jonathan/resumeforge/internal/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "resumeforge",
	Short:             "Build a resume section by section",
	Long:              "ResumeForge collects personal info, experience, education and skills through a sectioned form, shows a live preview, and exports it to PDF.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	configFile string
	verbose    bool

	appConfig config.Config
	appLog    = logger.Nop()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug information")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(configFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Verbose = true
	}

	log, err := logger.New(cfg.LogMode, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appConfig = cfg
	appLog = log.With("command", cmd.Name())
	appLog.Debug("configuration loaded", "config", configFile, "layout", cfg.Layout, "paper", cfg.Paper)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	appLog.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
