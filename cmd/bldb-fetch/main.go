// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bldb-fetch CLI.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bldb-fetch/internal/acquire"
	"github.com/pdiddy/bldb-fetch/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultSourceURL = "http://www.bldb.eu/BLDB.php"
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "bldb-fetch/0.1"
	defaultTool      = "bldb-fetch"
)

var (
	// logger writes warnings and diagnostics to stderr; stdout carries records.
	logger = newLogger(os.Stderr)

	// loadedSecrets holds values loaded from the secrets directory at startup.
	loadedSecrets secrets.Store
)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
}

// rootCmd is the base command for the bldb-fetch CLI.
var rootCmd = &cobra.Command{
	Use:   "bldb-fetch",
	Short: "Download FASTA records for the accessions listed on a BLDB page",
	Long: `bldb-fetch scrapes the nucleotide accessions linked from the Beta-Lactamase
DataBase (BLDB) page, builds NCBI efetch URLs for them (keeping any from/to
range and strand given in the links), and downloads each record as FASTA.

Records are printed to stdout, or saved as <accession>.fasta files when
--output-dir is set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(viper.GetString("secrets_dir"), logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug().Strs("keys", s.Keys()).Msg("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./bldb-fetch.yaml or ~/.config/bldb-fetch/config.yaml)")
	pf.Bool("verbose", false, "log request detail to stderr")
	pf.String("secrets-dir", ".secrets", "directory of secret files (ncbi-email)")
	pf.Duration("timeout", defaultTimeout, "HTTP request timeout")
	pf.String("user-agent", defaultUserAgent, "User-Agent header for HTTP requests")
	pf.String("efetch-url", acquire.DefaultEfetchURL, "NCBI efetch endpoint")
	pf.String("email", "", "contact email sent to NCBI (default from secrets ncbi-email)")
	pf.String("tool", defaultTool, "tool name sent to NCBI")

	for key, flag := range map[string]string{
		"verbose":     "verbose",
		"secrets_dir": "secrets-dir",
		"timeout":     "timeout",
		"user_agent":  "user-agent",
		"efetch_url":  "efetch-url",
		"email":       "email",
		"tool":        "tool",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
	viper.SetDefault("source_url", defaultSourceURL)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bldb-fetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bldb-fetch"))
		}
	}

	viper.SetEnvPrefix("BLDB_FETCH")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if viper.GetBool("verbose") {
		logger = logger.Level(zerolog.DebugLevel)
	}
	if err == nil {
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("bldb-fetch failed")
		stop()
		os.Exit(1)
	}
}
