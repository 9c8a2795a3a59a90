package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoot(t *testing.T) {
	t.Parallel()

	t.Run("should default to the current directory", func(t *testing.T) {
		t.Parallel()

		got, err := resolveRoot(afero.NewOsFs(), "")
		require.NoError(t, err)

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, wd, got)
	})

	t.Run("should accept an existing directory and make it absolute", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		got, err := resolveRoot(afero.NewOsFs(), dir)
		require.NoError(t, err)

		want, err := filepath.Abs(dir)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("should reject a root that does not exist", func(t *testing.T) {
		t.Parallel()

		_, err := resolveRoot(afero.NewMemMapFs(), "/definitely/not/there")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}
