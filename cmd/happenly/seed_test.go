package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedData(t *testing.T) {
	ctx := context.Background()

	t.Run("bundled default", func(t *testing.T) {
		data, err := loadSeedData(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, data.Events, 5)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories:\n  - id: music\n    name: Music\n"), 0o600))

		data, err := loadSeedData(ctx, path, "")
		require.NoError(t, err)
		require.Len(t, data.Categories, 1)
		assert.Equal(t, "music", data.Categories[0].ID)
		assert.Empty(t, data.Events)
	})

	t.Run("from url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("categories:\n  - id: arts\n    name: Arts\n"))
		}))
		defer srv.Close()

		data, err := loadSeedData(ctx, "", srv.URL)
		require.NoError(t, err)
		require.Len(t, data.Categories, 1)
		assert.Equal(t, "arts", data.Categories[0].ID)
	})

	t.Run("both sources", func(t *testing.T) {
		_, err := loadSeedData(ctx, "a.yaml", "http://example.com/a.yaml")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSeedData(ctx, filepath.Join(t.TempDir(), "nope.yaml"), "")
		require.Error(t, err)
	})
}

func TestRootCommand_subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["seed"])
	assert.NotNil(t, serveCmd.Flags().Lookup("port"))
	assert.NotNil(t, seedCmd.Flags().Lookup("file"))
	assert.NotNil(t, seedCmd.Flags().Lookup("url"))
}
