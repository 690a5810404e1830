package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/oracle/internal/store"
	"github.com/abhisek/oracle/internal/store/storetest"
)

func TestSaveReplacesSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	target := filepath.Join(dir, "oracle.db")

	first := storetest.Snapshot(t, storetest.Scenario())
	require.NoError(t, store.Save(first, target))

	second := storetest.Snapshot(t, storetest.Sample())
	require.NoError(t, store.Save(second, target))

	st, err := store.Open(target)
	require.NoError(t, err)
	assert.Equal(t, 5, st.DeckCount())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should be cleaned up")
}
