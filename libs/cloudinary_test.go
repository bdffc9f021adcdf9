package libs

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

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			"versioned delivery url",
			"https://res.cloudinary.com/demo/image/upload/v1712345678/coffees/coffees_42.jpg",
			"coffees/coffees_42",
		},
		{
			"no version segment",
			"https://res.cloudinary.com/demo/image/upload/hero/hero_7.png",
			"hero/hero_7",
		},
		{
			"folder starting with v is not a version",
			"https://res.cloudinary.com/demo/image/upload/vip/photo.png",
			"vip/photo",
		},
		{"local upload url", "/uploads/coffees/latte.png", ""},
		{"unrelated url", "https://example.com/image.png", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, publicIDFromURL(tc.url))
		})
	}
}

func TestRemoveImageLocal(t *testing.T) {
	dir := setUploadDir(t)

	path := filepath.Join(dir, "coffees", "latte.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))

	require.NoError(t, RemoveImage("/uploads/coffees/latte.png"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveImageMissingLocalFile(t *testing.T) {
	setUploadDir(t)
	assert.NoError(t, RemoveImage("/uploads/coffees/gone.png"))
}

func TestRemoveImageEmptyAndForeignURLs(t *testing.T) {
	assert.NoError(t, RemoveImage(""))
	assert.NoError(t, RemoveImage("https://example.com/image.png"))
}
