package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		dir, err := Dir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config/ipfs-deploy", dir)
	})

	t.Run("defaults to ~/.config when XDG_CONFIG_HOME not set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		home, err := os.UserHomeDir()
		require.NoError(t, err)

		dir, err := Dir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "ipfs-deploy"), dir)
	})
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config/ipfs-deploy/config.yaml", path)
}
