package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestPageDir_ListPages(t *testing.T) {
	t.Parallel()

	t.Run("lists files sorted by name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "c.html"), "c")
		writeFile(t, filepath.Join(dir, "a.html"), "a")
		writeFile(t, filepath.Join(dir, "index.html?page=2"), "b")

		paths, err := fs.NewPageDir(dir).ListPages(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.html"),
			filepath.Join(dir, "c.html"),
			filepath.Join(dir, "index.html?page=2"),
		}, paths)
	})

	t.Run("skips hidden files and directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "page.html"), "p")
		writeFile(t, filepath.Join(dir, ".listing"), "wget listing")
		writeFile(t, filepath.Join(dir, "sub", "nested.html"), "n")

		paths, err := fs.NewPageDir(dir).ListPages(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "page.html")}, paths)
	})

	t.Run("follows symlinks to regular files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "pages")
		writeFile(t, filepath.Join(dir, "a.html"), "a")
		writeFile(t, filepath.Join(root, "real.html"), "b")
		require.NoError(t, os.Mkdir(filepath.Join(root, "nested"), 0755))
		require.NoError(t, os.Symlink(filepath.Join("..", "real.html"), filepath.Join(dir, "b.html")))
		require.NoError(t, os.Symlink(filepath.Join("..", "nested"), filepath.Join(dir, "c")))
		require.NoError(t, os.Symlink(filepath.Join("..", "gone.html"), filepath.Join(dir, "d.html")))

		paths, err := fs.NewPageDir(dir).ListPages(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.html"),
			filepath.Join(dir, "b.html"),
		}, paths)
	})

	t.Run("returns empty list for empty directory", func(t *testing.T) {
		t.Parallel()

		paths, err := fs.NewPageDir(t.TempDir()).ListPages(context.Background())

		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("returns EINPUTMISSING when directory does not exist", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "20160525", "112610", "pages")

		_, err := fs.NewPageDir(missing).ListPages(context.Background())

		require.Error(t, err)
		assert.Equal(t, pagemeta.EINPUTMISSING, pagemeta.ErrorCode(err))
		assert.Contains(t, pagemeta.ErrorMessage(err), missing)
	})

	t.Run("returns EINPUTMISSING when path is a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pages")
		writeFile(t, path, "not a directory")

		_, err := fs.NewPageDir(path).ListPages(context.Background())

		assert.Equal(t, pagemeta.EINPUTMISSING, pagemeta.ErrorCode(err))
	})
}

func TestPageDir_OpenPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.html")
	writeFile(t, path, "<html></html>")
	pages := fs.NewPageDir(dir)

	rc, err := pages.OpenPage(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(content))
}
