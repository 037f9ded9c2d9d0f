package file_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/professional"
	"github.com/JulianoL13/guincho-scraper/internal/professional/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	store := file.NewStore(dir)
	at := time.Date(2024, 3, 4, 8, 5, 9, 0, time.UTC)

	records := []professional.Record{
		{Name: "Guincho São Jorge", Phone: "1134567890", State: "SP", CollectedOn: "2024-03-04"},
	}

	path, err := store.Save(records, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "guincho_20240304_080509.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []professional.Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, records, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not survive")
}

func TestStore_Save_Overwrites(t *testing.T) {
	store := file.NewStore(t.TempDir())
	at := time.Date(2024, 3, 4, 8, 5, 9, 0, time.UTC)

	_, err := store.Save([]professional.Record{{Name: "a"}, {Name: "b"}}, at)
	require.NoError(t, err)
	path, err := store.Save([]professional.Record{{Name: "c"}}, at)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []professional.Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Len(t, got, 1)
}
