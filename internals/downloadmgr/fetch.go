package downloadmgr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// DefaultMaxConnections is the number of simultaneous transfers allowed by default
const DefaultMaxConnections = 2

// FetchError is returned when a single transfer fails
type FetchError struct {
	URL    string
	Target string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %s", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher streams URLs to files. Every transfer started through the same Fetcher
// shares one connection bound.
type Fetcher struct {
	client  *http.Client
	sem     *semaphore.Weighted
	fetched int64
	written int64
}

// NewFetcher returns a Fetcher that allows at most maxConns simultaneous transfers.
// A nil client uses http.DefaultClient
func NewFetcher(client *http.Client, maxConns int64) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if maxConns < 1 {
		maxConns = DefaultMaxConnections
	}
	return &Fetcher{
		client: client,
		sem:    semaphore.NewWeighted(maxConns),
	}
}

// Fetch downloads url into destDir/destName. destDir is created if needed.
// An existing file is overwritten. Failures are returned as *FetchError
func (f *Fetcher) Fetch(ctx context.Context, url string, destDir string, destName string) error {
	target := filepath.Join(destDir, destName)
	if err := f.fetch(ctx, url, destDir, target); err != nil {
		return &FetchError{URL: url, Target: target, Err: err}
	}
	return nil
}

func (f *Fetcher) fetch(ctx context.Context, url string, destDir string, target string) error {
	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		return err
	}

	if err := f.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer f.sem.Release(1)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("invalid status code: %s", res.Status)
	}

	dest, err := os.Create(target)
	if err != nil {
		return err
	}

	n, err := io.Copy(dest, res.Body)
	if err == nil {
		err = dest.Sync()
	}
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// do not leave partial files behind
		os.Remove(target)
		return err
	}

	atomic.AddInt64(&f.fetched, 1)
	atomic.AddInt64(&f.written, n)
	return nil
}

// Stats returns the number of completed transfers and the bytes written by them
func (f *Fetcher) Stats() (files int64, bytes int64) {
	return atomic.LoadInt64(&f.fetched), atomic.LoadInt64(&f.written)
}
