// Package cmd provides the command-line interface for Pressroom with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --log-level, etc.) - highest priority
//	2. PRESSROOM_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (PRESSROOM_EDITOR_DRAG_THRESHOLD, etc.)
//	4. Configuration files (.pressroom.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rafaelfne/pressroom-sub002/internal/config"
	"github.com/rafaelfne/pressroom-sub002/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pressroom",
	Short: "A component-tree editing toolkit for report templates",
	Long: `Pressroom is the editing engine behind the visual report-template
editor, exposed as a CLI for batch edits, validation, and automation.

Key Features:
  • Remove, duplicate, copy and paste template components
  • Clipboard payloads portable across documents
  • Structural validation (duplicate ids, orphaned zones)
  • Watch mode re-validating a document on every save

Quick Start:
  pressroom list report.yaml               List top-level components
  pressroom remove report.yaml text-3      Remove a component
  pressroom copy report.yaml hero --out clip.json
  pressroom paste report.yaml --from clip.json
  pressroom validate report.yaml           Check structural invariants`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pressroom.yml, can also use PRESSROOM_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. PRESSROOM_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .pressroom.yml in current directory
//
// Automatic environment variable binding is enabled for all configuration
// values with the PRESSROOM_ prefix (e.g. PRESSROOM_LOGGING_LEVEL=debug).
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PRESSROOM_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pressroom")
	}

	viper.SetEnvPrefix("PRESSROOM")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or malformed config file degrades to defaults without
	// failing.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration and builds the CLI
// logger from it.
func loadConfig() (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})

	return cfg, logger, nil
}
