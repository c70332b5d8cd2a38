// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads operator settings kept out of the config file, one
// plain-text file per key in a directory such as .secrets/.
//
// Known keys: ncbi-email.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// NCBIEmail holds the contact address sent to E-utilities with each request.
const NCBIEmail = "ncbi-email"

// Store maps key names to values.
type Store map[string]string

// Load reads every regular, non-hidden file in dir. Values are trimmed and
// empty ones dropped. A missing directory yields an empty Store; an
// unreadable file is logged and skipped.
func Load(dir string, log zerolog.Logger) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Store)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Str("key", name).Err(err).Msg("could not read secret")
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			s[name] = v
		}
	}
	return s, nil
}

// Value returns override when it is non-empty, otherwise the stored value.
func (s Store) Value(key, override string) string {
	if override != "" {
		return override
	}
	return s[key]
}

// Keys returns the loaded key names in sorted order.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
