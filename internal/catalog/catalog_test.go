package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Equal(t, 4, c.Len())
	assert.Equal(t, DefaultSource, c.Source())

	items := c.Items()
	assert.Equal(t, "Pack amour", items[0].Name)
	assert.Equal(t, "Pack composé", items[3].Name)
	for i, it := range items {
		assert.Equal(t, i+1, it.ID)
		assert.NotEmpty(t, it.Title)
		assert.NotEmpty(t, it.Description)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	items := c.Items()
	items[0].Name = "changed"

	assert.Equal(t, "Pack amour", c.Items()[0].Name)
}

func TestByID(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	it, ok := c.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Pack anniversaire", it.Name)

	_, ok = c.ByID(99)
	assert.False(t, ok)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		empty bool
	}{
		{name: "empty document", doc: "", empty: true},
		{name: "empty list", doc: "offers: []\n", empty: true},
		{name: "null offers", doc: "offers:\n", empty: true},
		{name: "empty mapping", doc: "{}\n", empty: true},
		{name: "not a mapping", doc: "- 1\n- 2\n"},
		{name: "misspelled key", doc: "offer: []\n"},
		{name: "missing name", doc: "offers:\n  - id: 1\n    title: t\n    description: d\n"},
		{name: "unknown field", doc: "offers:\n  - id: 1\n    name: n\n    title: t\n    description: d\n    price: 3\n"},
		{name: "zero id", doc: "offers:\n  - id: 0\n    name: n\n    title: t\n    description: d\n"},
		{name: "duplicate id", doc: "offers:\n  - id: 1\n    name: a\n    title: t\n    description: d\n  - id: 1\n    name: b\n    title: t\n    description: d\n"},
		{name: "bad yaml", doc: "offers: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.yaml", []byte(tt.doc))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, "test.yaml", loadErr.Source)
			assert.Equal(t, tt.empty, errors.Is(err, ErrEmptyCatalog))
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offers.yaml")
	doc := "offers:\n  - id: 7\n    name: Pack fête\n    title: Une fête\n    description: Tout compris.\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := LoadOrDefault(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, path, c.Source())
	assert.Equal(t, "Pack fête", c.Items()[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadOrDefaultEmptyPath(t *testing.T) {
	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSource, c.Source())
}
