package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/minecraft"
)

// Extractor unpacks an archive into a directory
type Extractor interface {
	Extract(archive string, destDir string) error
}

// ZipExtractor extracts zip (and jar) archives. Existing files are overwritten
type ZipExtractor struct{}

// Extract unpacks archive into destDir
func (ZipExtractor) Extract(archive string, destDir string) error {
	z := archiver.Zip{
		OverwriteExisting: true,
		MkdirAll:          true,
	}
	return z.Unarchive(archive, destDir)
}

// InstallNatives downloads the native bundle of every library required on the installer's
// platform into the natives root, extracts it into natives/<version> and removes the archive.
// Every library is handled on its own, failures are collected in the report.
func (i *Installer) InstallNatives(ctx context.Context, req InstallRequest, desc *minecraft.LaunchManifest) *StageReport {
	report := &StageReport{Stage: StageNatives}
	l := req.layout()

	nativesDir := l.NativesDir(req.Version)
	if err := os.MkdirAll(nativesDir, os.ModePerm); err != nil {
		report.fail(err)
		return report
	}

	mgr := i.manager(StageNatives)
	for _, lib := range desc.Libraries.Required(i.Platform) {
		bundle, ok := lib.NativeBundle(i.Platform)
		if !ok {
			continue
		}
		if err := bundle.CheckPath(); err != nil {
			report.reject(bundle.URL, bundle.Path, err)
			continue
		}
		mgr.Add(&nativeItem{
			fetch:     &downloadmgr.HTTPItem{Fetcher: i.Fetcher, URL: bundle.URL, Dir: l.NativesRoot(), Name: bundle.FileName()},
			extractor: i.Extractor,
			version:   req.Version,
			target:    nativesDir,
		})
	}

	report.merge(mgr.Start(ctx))
	return report
}

// nativeItem downloads one native bundle and unpacks it
type nativeItem struct {
	fetch     *downloadmgr.HTTPItem
	extractor Extractor
	version   string
	target    string
}

func (n *nativeItem) Download(ctx context.Context) error {
	if err := n.fetch.Download(ctx); err != nil {
		return err
	}
	archive := filepath.Join(n.fetch.Dir, n.fetch.Name)
	defer os.Remove(archive)

	if isBrokenNightly(n.version, n.fetch.URL) {
		return nil
	}

	if err := n.extractor.Extract(archive, n.target); err != nil {
		return fmt.Errorf("extracting %s: %w", n.fetch.Name, err)
	}
	return nil
}

// isBrokenNightly returns true for the lwjgl nightly natives shipped with 1.8.
// They can not be extracted and are not needed to start the game
func isBrokenNightly(version string, url string) bool {
	return version == "1.8" && strings.Contains(url, "nightly")
}
