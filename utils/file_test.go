package utils

import (
	"os"
	"path/filepath"
	"testing"

	"brewhouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUploadDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev := config.AppConfig
	config.AppConfig = &config.Config{UploadDir: dir}
	t.Cleanup(func() { config.AppConfig = prev })
	return dir
}

func TestDeleteFile(t *testing.T) {
	dir := setUploadDir(t)

	path := filepath.Join(dir, "team", "photo.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))

	require.NoError(t, DeleteFile(filepath.Join("team", "photo.png")))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileMissing(t *testing.T) {
	setUploadDir(t)
	assert.NoError(t, DeleteFile("team/never-existed.png"))
}

func TestDeleteFileEmptyPath(t *testing.T) {
	setUploadDir(t)
	assert.NoError(t, DeleteFile(""))
}
