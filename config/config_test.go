package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rmexport.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	opts := Default()
	assert.Equal(t, "tldraw", opts.Format)
	assert.Equal(t, int64(4), opts.BatchSize)
	assert.False(t, opts.OpaqueIndexes)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
format: svg
page_name: Meeting notes
opaque_indexes: true
width: 800
height: 1200
batch_size: 8
`)
	opts, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "svg", opts.Format)
	assert.Equal(t, "Meeting notes", opts.PageName)
	assert.True(t, opts.OpaqueIndexes)
	assert.Equal(t, 800, opts.Width)
	assert.Equal(t, 1200, opts.Height)
	assert.Equal(t, int64(8), opts.BatchSize)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "page_name: Partial\n")

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tldraw", opts.Format)
	assert.Equal(t, int64(4), opts.BatchSize)
	assert.Equal(t, "Partial", opts.PageName)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "format: [broken\n"))
	assert.Error(t, err)
}

func TestLoadIfExists(t *testing.T) {
	opts, err := LoadIfExists(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)

	opts, err = LoadIfExists(writeConfig(t, "format: inkml\n"))
	require.NoError(t, err)
	assert.Equal(t, "inkml", opts.Format)
}
