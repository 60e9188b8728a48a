package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "tlc.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tlc.yaml")
	body := "out_dir: build\ncolor: always\ncontext_lines: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "build", cfg.OutDir)
	require.Equal(t, "always", cfg.Color)
	require.Equal(t, 2, cfg.ContextLines)
}

func TestLoadFillsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tlc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("context_lines: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ".", cfg.OutDir)
	require.Equal(t, "auto", cfg.Color)
}
