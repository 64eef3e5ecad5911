package catalogue_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopflow/shopflow/pkg/catalogue"
	"github.com/shopflow/shopflow/pkg/shop"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "items: [3, 1, 4, 1, 5]\n")

	items, err := catalogue.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []shop.ItemID{3, 1, 4, 1, 5}, items)
}

func TestLoad_MissingFileFallsBackToDefault(t *testing.T) {
	items, err := catalogue.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, catalogue.Default, items)
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "items: {broken\n")

	_, err := catalogue.Load(path)
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	path := writeFile(t, "items: []\n")

	_, err := catalogue.Load(path)
	assert.ErrorContains(t, err, "no items")
}
