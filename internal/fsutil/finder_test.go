package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.kbd.hcl"))
	touch(t, filepath.Join(dir, "a.kbd.hcl"))
	touch(t, filepath.Join(dir, "nested", "c.kbd.hcl"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".hidden", "d.kbd.hcl"))

	files, err := FindFilesByExtension(dir, ".kbd.hcl")
	require.NoError(t, err)
	want := []string{
		filepath.Join(dir, "a.kbd.hcl"),
		filepath.Join(dir, "b.kbd.hcl"),
		filepath.Join(dir, "nested", "c.kbd.hcl"),
	}
	require.Equal(t, want, files, "lexical order, hidden directories skipped")
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "absent"), ".kbd.hcl")
	require.Error(t, err)
}
