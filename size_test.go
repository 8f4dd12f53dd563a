package ipfsdeploy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSize(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "dist/index.html", []byte(strings.Repeat("a", 1000)), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "dist/assets/app.js", []byte(strings.Repeat("b", 536)), 0o644))
	require.NoError(t, fsys.MkdirAll("dist/empty", 0o755))

	size, err := DirSize(fsys, "dist")
	require.NoError(t, err)
	assert.Equal(t, int64(1536), size)
	assert.Equal(t, "1.5 KiB", HumanSize(size))
}

func TestDirSize_SymlinkedRoot(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "_build", "html")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "index.html"), []byte(strings.Repeat("a", 1000)), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(target, "assets", "app.js"), []byte(strings.Repeat("b", 24)), 0o644))

	link := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.Symlink(target, link))

	size, err := DirSize(afero.NewOsFs(), link)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), size)

	size, err = DirSize(afero.NewOsFs(), link+string(filepath.Separator))
	require.NoError(t, err)
	assert.Equal(t, int64(1024), size)
}

func TestDirSize_Errors(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "file.txt", []byte("x"), 0o644))

	_, err := DirSize(fsys, "missing")
	assert.Error(t, err)

	_, err = DirSize(fsys, "file.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestHumanSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{-1, "0 B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanSize(tt.n))
	}
}
