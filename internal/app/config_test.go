package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{InputPath: "in.yaml", OutputPath: "out.ini"})
	require.NoError(t, err)
	assert.Equal(t, "in.yaml", cfg.InputPath)
	assert.Equal(t, "out.ini", cfg.OutputPath)
}

func TestNewConfig_MissingInput(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{OutputPath: "out.ini"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InputPath")
}

func TestNewConfig_MissingOutput(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{InputPath: "in.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OutputPath")
}
