package downloadmgr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "content of "+r.URL.Path)
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), 2)
	dir := filepath.Join(t.TempDir(), "deep", "nested")

	if err := f.Fetch(context.Background(), srv.URL+"/a.jar", dir, "a.jar"); err != nil {
		t.Fatal(err)
	}
	buf, err := os.ReadFile(filepath.Join(dir, "a.jar"))
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "content of /a.jar" {
		t.Errorf("unexpected content %q", buf)
	}

	err = f.Fetch(context.Background(), srv.URL+"/missing", dir, "missing.jar")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.Target != filepath.Join(dir, "missing.jar") {
		t.Errorf("unexpected target %s", fetchErr.Target)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.jar")); !os.IsNotExist(err) {
		t.Errorf("failed fetch should not create a file")
	}

	files, bytes := f.Stats()
	if files != 1 || bytes != int64(len("content of /a.jar")) {
		t.Errorf("Stats() = %d, %d", files, bytes)
	}
}

func TestManager_Start(t *testing.T) {
	var inFlight, maxInFlight int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt64(&inFlight, 1)
		defer atomic.AddInt64(&inFlight, -1)
		for {
			max := atomic.LoadInt64(&maxInFlight)
			if current <= max || atomic.CompareAndSwapInt64(&maxInFlight, max, current) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)

		if filepath.Base(r.URL.Path) == "broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, r.URL.Path)
	}))
	defer srv.Close()

	dir := t.TempDir()
	mgr := New(NewFetcher(srv.Client(), 2))
	var progressCalls int64
	mgr.OnProgress = func(done, total int) { atomic.AddInt64(&progressCalls, 1) }

	for i := 0; i < 20; i++ {
		name := fmt.Sprintf("item-%d", i)
		mgr.AddURL(srv.URL+"/"+name, dir, name)
	}
	mgr.AddURL(srv.URL+"/broken", dir, "broken")
	mgr.AddURL(srv.URL+"/broken", dir, "broken-2")

	report := mgr.Start(context.Background())

	if report.Total != 22 {
		t.Errorf("Total = %d, want 22", report.Total)
	}
	if len(report.Failed) != 2 {
		t.Errorf("expected 2 failures, got %d", len(report.Failed))
	}
	if report.Succeeded() != 20 {
		t.Errorf("Succeeded() = %d, want 20", report.Succeeded())
	}
	if report.Err() == nil {
		t.Error("expected aggregated error")
	}
	if progressCalls != 22 {
		t.Errorf("OnProgress called %d times, want 22", progressCalls)
	}

	// every sibling settled before Start returned
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 20 {
		t.Errorf("expected 20 files, got %d", len(entries))
	}

	if maxInFlight > 2 {
		t.Errorf("connection bound violated: %d simultaneous requests", maxInFlight)
	}

	if mgr.Len() != 0 {
		t.Error("queue should be empty after Start")
	}
}

func TestManager_StartEmpty(t *testing.T) {
	report := New(NewFetcher(nil, 0)).Start(context.Background())
	if report.Total != 0 || report.Err() != nil {
		t.Errorf("unexpected report %+v", report)
	}
}
