package downloadmgr

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// maxWorkers bounds the goroutines of one queue. Network concurrency is bound by the Fetcher
const maxWorkers = 16

// Downloader allows downloadmgr to download the item
type Downloader interface {
	Download(ctx context.Context) error
}

// HTTPItem is a URL, target pair that will be downloaded using the Fetcher
type HTTPItem struct {
	Fetcher *Fetcher
	URL     string
	Dir     string
	Name    string
}

// Download downloads the item to Dir/Name
func (i *HTTPItem) Download(ctx context.Context) error {
	return i.Fetcher.Fetch(ctx, i.URL, i.Dir, i.Name)
}

// Manager includes a queue of items to download
type Manager struct {
	fetcher    *Fetcher
	queue      []Downloader
	OnProgress func(done int, total int)
}

// New creates a new download manager using the given Fetcher for HTTPItems
func New(f *Fetcher) *Manager {
	return &Manager{fetcher: f}
}

// Add adds a new item to the queue
func (d *Manager) Add(i Downloader) {
	d.queue = append(d.queue, i)
}

// AddURL queues url to be fetched into dir/name
func (d *Manager) AddURL(url string, dir string, name string) {
	d.Add(&HTTPItem{Fetcher: d.fetcher, URL: url, Dir: dir, Name: name})
}

// Len returns the number of queued items
func (d *Manager) Len() int {
	return len(d.queue)
}

// Report is the outcome of one queue run
type Report struct {
	Total  int
	Failed []error
}

// Succeeded returns the number of items that were downloaded without error
func (r *Report) Succeeded() int {
	return r.Total - len(r.Failed)
}

// Err returns all failures as one error or nil
func (r *Report) Err() error {
	var merr *multierror.Error
	for _, err := range r.Failed {
		merr = multierror.Append(merr, err)
	}
	return merr.ErrorOrNil()
}

// Start downloads every queued item and returns once all of them settled.
// A failing item never stops its siblings; all failures end up in the report.
// The queue is empty afterwards
func (d *Manager) Start(ctx context.Context) *Report {
	queue := d.queue
	d.queue = nil

	report := &Report{Total: len(queue)}
	if len(queue) == 0 {
		return report
	}

	var (
		mu   sync.Mutex
		done int
		g    errgroup.Group
	)
	g.SetLimit(maxWorkers)

	for _, item := range queue {
		item := item
		g.Go(func() error {
			err := item.Download(ctx)

			mu.Lock()
			defer mu.Unlock()
			done++
			if err != nil {
				report.Failed = append(report.Failed, err)
			}
			if d.OnProgress != nil {
				d.OnProgress(done, report.Total)
			}
			// failures are collected, never returned, so no sibling is cancelled
			return nil
		})
	}
	g.Wait()

	return report
}
