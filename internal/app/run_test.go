package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/inigen/internal/loader"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.yaml")
	outPath := filepath.Join(dir, "out.ini")
	require.NoError(t, os.WriteFile(inPath, []byte("database:\n  host: localhost\n  port: 5432\n"), 0600))

	cfg, err := NewConfig(Config{InputPath: inPath, OutputPath: outPath, LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, cfg, loader.NewYAML())

	require.NoError(t, a.Run(context.Background()))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "[database]\nhost = localhost\nport = 5432\n\n", string(got))

	logText := out.String()
	assert.Contains(t, logText, "Reading input")
	assert.Contains(t, logText, "Converting")
	assert.Contains(t, logText, "Writing output")
	assert.Contains(t, logText, "Conversion finished")
}

func TestRun_LoadFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(Config{
		InputPath:  filepath.Join(dir, "missing.yaml"),
		OutputPath: filepath.Join(dir, "out.ini"),
	})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, cfg, loader.NewYAML())
	runErr := a.Run(context.Background())

	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "failed to load input")
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestRun_WriteFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(inPath, []byte("a:\n  k: v\n"), 0600))

	// Destination parent is a regular file, so opening the output fails.
	parent := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0600))

	cfg, err := NewConfig(Config{InputPath: inPath, OutputPath: filepath.Join(parent, "out.ini")})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, cfg, loader.NewYAML())
	runErr := a.Run(context.Background())

	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "failed to write output")
}

func TestRun_SkippedEntriesAreReported(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.yaml")
	outPath := filepath.Join(dir, "out.ini")
	require.NoError(t, os.WriteFile(inPath, []byte("flag: true\n"), 0600))

	cfg, err := NewConfig(Config{InputPath: inPath, OutputPath: outPath})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, cfg, loader.NewYAML())
	require.NoError(t, a.Run(context.Background()))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "", string(got))
	assert.Contains(t, out.String(), "Skipped top-level entries")
}
