package storage_test

import (
	"os"
	"strings"
	"testing"

	"go-jobboard-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	t.Run("Save generates a fresh name keeping the extension", func(t *testing.T) {
		name, err := store.Save("resumes", "My Resume.PDF", []byte("%PDF-1.4"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".pdf"))
		assert.NotContains(t, name, "My Resume")

		path, err := store.Path("resumes", name)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), data)
	})

	t.Run("Path rejects traversal attempts", func(t *testing.T) {
		_, err := store.Path("resumes", "../../etc/passwd")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Remove is idempotent", func(t *testing.T) {
		name, err := store.Save("resumes", "a.pdf", []byte("%PDF"))
		require.NoError(t, err)
		assert.NoError(t, store.Remove("resumes", name))
		assert.NoError(t, store.Remove("resumes", name))

		_, err = store.Path("resumes", name)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
