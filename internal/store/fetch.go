package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// FetchOptions configures how a snapshot is obtained.
type FetchOptions struct {
	// Checksum is the expected hex SHA-256 of the snapshot. Empty skips
	// verification.
	Checksum string

	// Timeout bounds an HTTP download. Zero means 30s.
	Timeout time.Duration

	// NoCache appends a ?v=<unix-nanos> query so intermediaries cannot
	// serve a stale snapshot.
	NoCache bool

	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// IsRemote reports whether source is an http(s) URL rather than a path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetch returns the raw snapshot bytes from a local path or an http(s) URL.
// Every failure is a *LoadError.
func Fetch(ctx context.Context, source string, opts FetchOptions) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if IsRemote(source) {
		data, err = download(ctx, source, opts)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, &LoadError{Stage: StageFetch, Source: source, Err: err}
	}

	if opts.Checksum != "" {
		if err := verifyChecksum(data, opts.Checksum); err != nil {
			return nil, &LoadError{Stage: StageVerify, Source: source, Err: err}
		}
	}
	return data, nil
}

func download(ctx context.Context, rawURL string, opts FetchOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if opts.NoCache {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, err
		}
		q := u.Query()
		q.Set("v", strconv.FormatInt(time.Now().UnixNano(), 10))
		u.RawQuery = q.Encode()
		rawURL = u.String()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	return io.ReadAll(resp.Body)
}

func verifyChecksum(data []byte, expectedHex string) error {
	h := sha256.Sum256(data)
	actual := hex.EncodeToString(h[:])
	if !strings.EqualFold(actual, strings.TrimSpace(expectedHex)) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, expectedHex, actual)
	}
	return nil
}
