package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"brewhouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUpload(t *testing.T, rel string) string {
	t.Helper()

	dir := t.TempDir()
	prev := config.AppConfig
	config.AppConfig = &config.Config{UploadDir: dir}
	t.Cleanup(func() { config.AppConfig = prev })

	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
	return path
}

func TestRemoveOldImageDeletesReplacedFile(t *testing.T) {
	path := writeUpload(t, "team/old.png")

	removeOldImage("/uploads/team/old.png", "/uploads/team/new.png")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveOldImageKeepsUnchangedFile(t *testing.T) {
	path := writeUpload(t, "team/same.png")

	removeOldImage("/uploads/team/same.png", "/uploads/team/same.png")
	removeOldImage("", "/uploads/team/same.png")

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
