package store_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/oracle/internal/store"
	"github.com/abhisek/oracle/internal/store/storetest"
)

func sha256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

func TestFetchLocalFile(t *testing.T) {
	path := storetest.WriteFile(t, t.TempDir(), storetest.Scenario())

	data, err := store.Fetch(context.Background(), path, store.FetchOptions{})
	require.NoError(t, err)

	s, err := store.Load(data)
	require.NoError(t, err)
	assert.Equal(t, 1, s.MessageCount())
}

func TestFetchHTTP(t *testing.T) {
	snapshot := storetest.Snapshot(t, storetest.Sample())

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("v")
		_, _ = w.Write(snapshot)
	}))
	defer srv.Close()

	data, err := store.Fetch(context.Background(), srv.URL+"/data/oracle.db", store.FetchOptions{
		Checksum: sha256Hex(snapshot),
		NoCache:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, snapshot, data)
	assert.NotEmpty(t, gotQuery, "cache-busting query should be sent")
}

func TestFetchHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := store.Fetch(context.Background(), srv.URL+"/oracle.db", store.FetchOptions{})
	var le *store.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, store.StageFetch, le.Stage)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchChecksumMismatch(t *testing.T) {
	path := storetest.WriteFile(t, t.TempDir(), storetest.Scenario())

	_, err := store.Fetch(context.Background(), path, store.FetchOptions{Checksum: "deadbeef"})
	var le *store.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, store.StageVerify, le.Stage)
	assert.ErrorIs(t, err, store.ErrChecksum)
}

func TestFetchMissingFile(t *testing.T) {
	_, err := store.Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.db"), store.FetchOptions{})
	var le *store.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, store.StageFetch, le.Stage)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := store.Fetch(context.Background(), srv.URL, store.FetchOptions{Timeout: 50 * time.Millisecond})
	require.Error(t, err)
}

func TestIsRemote(t *testing.T) {
	assert.True(t, store.IsRemote("https://example.com/oracle.db"))
	assert.True(t, store.IsRemote("http://localhost/oracle.db"))
	assert.False(t, store.IsRemote("/var/lib/oracle.db"))
	assert.False(t, store.IsRemote("data/oracle.db"))
}
