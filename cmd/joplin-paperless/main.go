// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the joplin-paperless CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/joplin-paperless/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the process-wide logger, configured in PersistentPreRunE.
var logger zerolog.Logger

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, or the secret value for key.
func secretDefault(key, fallback string) string {
	return secrets.Default(loadedSecrets, key, fallback)
}

// rootCmd is the base command for the joplin-paperless CLI.
var rootCmd = &cobra.Command{
	Use:   "joplin-paperless",
	Short: "Export Joplin notes as PDFs and upload them to Paperless-ngx",
	Long: `joplin-paperless bridges a Joplin notebook export and a Paperless-ngx
document archive. The export stage turns each note of a "Markdown + Front
Matter" export into one PDF, copying embedded PDF attachments and assembling
image attachments into pages. The upload stage posts a folder of PDFs to the
Paperless-ngx ingestion API, one request per file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// cmd.Root(), not rootCmd: this closure is part of rootCmd's own
		// initializer and must not refer to it.
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger = newLogger(verbose)

		s, err := secrets.Load(".secrets/", logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug().Strs("keys", keys).Msg("loaded secrets")
		}
		return nil
	},
}

// newLogger builds a console logger writing to stderr. verbose enables
// debug-level output.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}
	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./joplin-paperless.yaml or ~/.config/joplin-paperless/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("joplin-paperless")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "joplin-paperless"))
		}
	}

	viper.SetEnvPrefix("JOPLIN_PAPERLESS")
	viper.AutomaticEnv()

	// api_url and api_token bind to the unprefixed PAPERLESS_* names, the
	// same ones a Paperless .env file carries.
	_ = viper.BindEnv("api_url", "PAPERLESS_API_URL")
	_ = viper.BindEnv("api_token", "PAPERLESS_API_TOKEN")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
