package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/bldb-fetch/internal/acquire"
	"github.com/pdiddy/bldb-fetch/internal/secrets"
	"github.com/pdiddy/bldb-fetch/pkg/types"
)

// loadFetchConfig merges flags, environment and config file into a
// FetchConfig. A page URL given as the first argument overrides source_url.
func loadFetchConfig(args []string) (types.FetchConfig, error) {
	var cfg types.FetchConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if len(args) > 0 {
		cfg.SourceURL = args[0]
	}
	cfg.Email = loadedSecrets.Value(secrets.NCBIEmail, cfg.Email)
	if err := acquire.ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newBuilder(cfg types.FetchConfig) acquire.Builder {
	return acquire.Builder{BaseURL: cfg.EfetchURL, Email: cfg.Email, Tool: cfg.Tool}
}
