// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Store
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, NCBIEmail, "  lab@example.org \n")
				writeFile(t, dir, "other-key", "v1")
				return dir
			},
			want: Store{NCBIEmail: "lab@example.org", "other-key": "v1"},
		},
		{
			name: "returns empty store for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: Store{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, NCBIEmail, "lab@example.org")
				writeFile(t, dir, "blank", " \n\t ")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: Store{NCBIEmail: "lab@example.org"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writeFile(t, filepath.Dir(path), "file", "x")

	_, err := Load(path, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading secrets directory")
}

func TestLoad_UnreadableFileWarns(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions not enforced")
	}
	dir := t.TempDir()
	writeFile(t, dir, NCBIEmail, "lab@example.org")
	writeFile(t, dir, "locked", "x")
	require.NoError(t, os.Chmod(filepath.Join(dir, "locked"), 0o000))

	var logs bytes.Buffer
	got, err := Load(dir, zerolog.New(&logs))
	require.NoError(t, err)
	assert.Equal(t, Store{NCBIEmail: "lab@example.org"}, got)
	assert.Contains(t, logs.String(), "locked")
}

func TestStoreValue(t *testing.T) {
	s := Store{NCBIEmail: "stored@example.org"}
	assert.Equal(t, "flag@example.org", s.Value(NCBIEmail, "flag@example.org"))
	assert.Equal(t, "stored@example.org", s.Value(NCBIEmail, ""))
	assert.Equal(t, "", s.Value("missing", ""))
}

func TestStoreKeys(t *testing.T) {
	s := Store{"b": "1", "a": "2", NCBIEmail: "3"}
	assert.Equal(t, []string{"a", "b", NCBIEmail}, s.Keys())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
