package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSecretFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "sendemail.config")
	require.NoError(t, os.WriteFile(path, []byte("s3cret-password\nsecond line ignored\n"), 0o600))

	got, err := ReadSecretFile(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret-password", got)
}

func TestReadSecretFileTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "sendemail.config")
	require.NoError(t, os.WriteFile(path, []byte("  padded \n"), 0o600))

	got, err := ReadSecretFile(path)
	require.NoError(t, err)
	assert.Equal(t, "padded", got)
}

func TestReadSecretFileMissing(t *testing.T) {
	_, err := ReadSecretFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestReadSecretFileEmpty(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "sendemail.config")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := ReadSecretFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
