package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/inigen/internal/config"
)

func loadTOML(t *testing.T, src string) *config.Map {
	t.Helper()
	path := writeTemp(t, "in.toml", src)
	m, err := NewTOML().Load(context.Background(), path)
	require.NoError(t, err)
	return m
}

func TestTOML_Tables(t *testing.T) {
	t.Parallel()

	m := loadTOML(t, `
[database]
host = "localhost"
port = 5432

[server]
tls = true
`)

	require.Equal(t, 2, m.Len())

	db, ok := m.Lookup("database")
	require.True(t, ok)
	require.True(t, db.IsSection())
	assert.Equal(t, []config.Key{
		{Name: "host", Value: "localhost"},
		{Name: "port", Value: "5432"},
	}, db.Section.Keys())
}

func TestTOML_LexicalOrder(t *testing.T) {
	t.Parallel()

	m := loadTOML(t, `
[zeta]
b = 2
a = 1

[alpha]
k = 1
`)

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "zeta", entries[1].Name)

	assert.Equal(t, []config.Key{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "2"},
	}, entries[1].Section.Keys())
}

func TestTOML_TopLevelScalarEntry(t *testing.T) {
	t.Parallel()

	m := loadTOML(t, `
flag = true
ratio = 1.5

[s]
k = "v"
`)

	flag, ok := m.Lookup("flag")
	require.True(t, ok)
	assert.False(t, flag.IsSection())
	assert.Equal(t, "true", flag.Scalar)

	ratio, ok := m.Lookup("ratio")
	require.True(t, ok)
	assert.Equal(t, "1.5", ratio.Scalar)
}

func TestTOML_DeepValueFlattensToJSON(t *testing.T) {
	t.Parallel()

	m := loadTOML(t, `
[service]
tags = ["a", "b"]
limits = { cpu = 2 }
`)

	e, ok := m.Lookup("service")
	require.True(t, ok)
	tags, _ := e.Section.Get("tags")
	limits, _ := e.Section.Get("limits")
	assert.Equal(t, `["a","b"]`, tags)
	assert.Equal(t, `{"cpu":2}`, limits)
}

func TestTOML_Malformed(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "broken.toml", "[unclosed\n")
	_, err := NewTOML().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestTOML_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewTOML().Load(context.Background(), "does/not/exist.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read")
}
