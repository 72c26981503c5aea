package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadGeneratesNameAndPublicURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/")
	require.NoError(t, err)

	url, err := store.Upload(BucketBrochures, "Paket Umrah.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/storage/brochures/"), url)
	assert.True(t, strings.HasSuffix(url, ".pdf"), url)
	assert.NotContains(t, url, "Paket", "client file name must not leak into the path")

	name := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(store.Root, string(BucketBrochures), name))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestUploadsGetDistinctNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	first, err := store.Upload(BucketPackageImages, "cover.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Upload(BucketPackageImages, "cover.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
