package itemdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RuneStatus_Go/internal/domain"
)

func writeItemDB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items-complete.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("valid file", func(t *testing.T) {
		path := writeItemDB(t, `{
			"995": {"id": 995, "name": "Coins", "members": false},
			"4151": {"id": 4151, "name": "Abyssal whip", "members": true}
		}`)

		table, err := Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())

		name, ok := table.Name(4151)
		assert.True(t, ok)
		assert.Equal(t, "Abyssal whip", name)
	})

	t.Run("skips non-numeric keys and missing names", func(t *testing.T) {
		path := writeItemDB(t, `{
			"995": {"name": "Coins"},
			"abc": {"name": "Bogus"},
			"1": {"members": false},
			"2": {"name": null}
		}`)

		table, err := Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())

		_, ok := table.Name(1)
		assert.False(t, ok)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(ctx, "/nonexistent/items-complete.json")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrItemDBUnavailable)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := Load(ctx, writeItemDB(t, `{invalid json}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidItemDB)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := Load(ctx, writeItemDB(t, `[{"id": 995, "name": "Coins"}]`))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidItemDB)
		assert.Contains(t, err.Error(), "does not match schema")
	})

	t.Run("malformed entries are skipped, not fatal", func(t *testing.T) {
		path := writeItemDB(t, `{
			"995": {"name": "Coins"},
			"4151": {"id": "4151", "name": 4151},
			"526": "Bones",
			"1": {"name": ["Bronze", "dagger"]}
		}`)

		table, err := Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())

		name, ok := table.Name(995)
		assert.True(t, ok)
		assert.Equal(t, "Coins", name)
		_, ok = table.Name(4151)
		assert.False(t, ok)
	})
}

func TestLoader_LoadOrEmpty(t *testing.T) {
	loader := NewLoader()

	table := loader.LoadOrEmpty(context.Background(), "/nonexistent/items-complete.json")
	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())

	table = loader.LoadOrEmpty(context.Background(), writeItemDB(t, `{"995": {"name": "Coins"}}`))
	assert.Equal(t, 1, table.Len())
}

func TestTable(t *testing.T) {
	src := map[int]string{995: "Coins"}
	table := NewTable(src)
	src[995] = "Changed"
	src[1] = "Added"

	name, ok := table.Name(995)
	assert.True(t, ok)
	assert.Equal(t, "Coins", name)
	assert.Equal(t, 1, table.Len())

	var nilTable *Table
	_, ok = nilTable.Name(995)
	assert.False(t, ok)
	assert.Equal(t, 0, nilTable.Len())

	var lookup Lookup = Map{4151: "Abyssal whip"}
	name, ok = lookup.Name(4151)
	assert.True(t, ok)
	assert.Equal(t, "Abyssal whip", name)
}
