package publish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePublishRoot(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing directory", func(t *testing.T) {
		assert.Error(t, validatePublishRoot(filepath.Join(dir, "missing")))
	})

	t.Run("path is a file", func(t *testing.T) {
		filePath := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

		assert.Error(t, validatePublishRoot(filePath))
	})

	t.Run("missing index.html", func(t *testing.T) {
		root := filepath.Join(dir, "no-index")
		require.NoError(t, os.MkdirAll(root, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "main.js"), []byte("x"), 0o644))

		assert.Error(t, validatePublishRoot(root))
	})

	t.Run("index.html is a directory", func(t *testing.T) {
		root := filepath.Join(dir, "dir-index")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "index.html"), 0o755))

		assert.Error(t, validatePublishRoot(root))
	})

	t.Run("index.html nested only", func(t *testing.T) {
		root := filepath.Join(dir, "nested-index")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "index.html"), []byte("x"), 0o644))

		assert.Error(t, validatePublishRoot(root))
	})

	t.Run("valid root", func(t *testing.T) {
		root := filepath.Join(dir, "valid")
		require.NoError(t, os.MkdirAll(root, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html></html>"), 0o644))

		assert.NoError(t, validatePublishRoot(root))
	})
}
