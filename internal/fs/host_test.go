package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ostafen/restorext/internal/fs"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8, 0xff}, 0644))

	fsys, rel := fs.Resolve(path)
	require.False(t, filepath.IsAbs(rel))

	fi, err := fsys.Stat(rel)
	require.NoError(t, err)
	require.Equal(t, int64(3), fi.Size())
}

func TestResolve_Relative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc"), []byte("%PDF-1.7"), 0644))
	t.Chdir(dir)

	fsys, rel := fs.Resolve("doc")

	fi, err := fsys.Stat(rel)
	require.NoError(t, err)
	require.Equal(t, "doc", fi.Name())
}
