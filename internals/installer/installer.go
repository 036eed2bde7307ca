// Package installer resolves a minecraft version and materializes everything it needs
// (descriptor, client jar, assets, libraries, natives) below a game root.
package installer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/minepkg/mclaunch/internals/minecraft"
)

var (
	// ErrMissingVersion is returned if no version was supplied
	ErrMissingVersion = errors.New("no version supplied")
	// ErrVersionNotFound is returned if the manifest has no release with the requested id
	ErrVersionNotFound = errors.New("version not found")
)

// Stage is one step of the install pipeline
type Stage string

const (
	StageMetadata  Stage = "version-metadata"
	StageClient    Stage = "client"
	StageAssets    Stage = "assets"
	StageLibraries Stage = "libraries"
	StageNatives   Stage = "natives"
)

// StageError tells which stage failed
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// MetadataError is returned if the manifest, a descriptor or an asset index
// could not be fetched or parsed
type MetadataError struct {
	// Source is the URL or file that failed
	Source string
	Err    error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("invalid metadata %s: %s", e.Source, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

// InstallRequest is everything one install run needs to know
type InstallRequest struct {
	// Version is the release id (for example "1.20.1")
	Version string
	// Root is the game root directory
	Root string
	// Manifest is an already fetched version manifest. If nil, it is fetched
	Manifest *minecraft.VersionManifest
}

func (r InstallRequest) layout() layout.Layout {
	return layout.New(r.Root)
}

// Installer downloads minecraft versions. It holds no per version state,
// one Installer can be used for many requests
type Installer struct {
	Fetcher *downloadmgr.Fetcher
	// ManifestURL is the version manifest location
	ManifestURL string
	// ResourceURL is the asset object host
	ResourceURL string
	// Platform selects native bundles
	Platform minecraft.Platform
	// Extractor unpacks native bundles
	Extractor Extractor
	// SkipExisting skips artifacts whose target file already exists.
	// Off by default: every run downloads everything again
	SkipExisting bool
	Logger       *cmdlog.Logger
	// OnProgress is called after every settled item of a stage
	OnProgress func(stage Stage, done int, total int)
}

// New returns an Installer with mojang defaults for the running platform
func New(f *downloadmgr.Fetcher) *Installer {
	return &Installer{
		Fetcher:     f,
		ManifestURL: minecraft.VersionManifestURL,
		ResourceURL: minecraft.ResourceURL,
		Platform:    minecraft.CurrentPlatform(),
		Extractor:   ZipExtractor{},
		Logger:      cmdlog.Discard(),
	}
}

// StageReport is the outcome of one fan-out stage
type StageReport struct {
	Stage Stage
	// Total is the number of queued items
	Total int
	// Skipped items already existed (only with SkipExisting)
	Skipped int
	Failed  []error
	// Size is the declared size of all items in bytes, if known
	Size int64
}

// Fetched returns the number of items that were installed
func (r *StageReport) Fetched() int {
	n := r.Total - len(r.Failed)
	if n < 0 {
		return 0
	}
	return n
}

// Err returns nil or a *StageError containing every failure of this stage
func (r *StageReport) Err() error {
	if r == nil || len(r.Failed) == 0 {
		return nil
	}
	return &StageError{Stage: r.Stage, Err: multierror.Append(nil, r.Failed...)}
}

// Summary returns a one line description like "assets: 3 fetched, 1 failed"
func (r *StageReport) Summary() string {
	msg := fmt.Sprintf("%s: %d fetched", r.Stage, r.Fetched())
	if r.Skipped != 0 {
		msg += fmt.Sprintf(", %d skipped", r.Skipped)
	}
	if len(r.Failed) != 0 {
		msg += fmt.Sprintf(", %d failed", len(r.Failed))
	}
	return msg
}

func (r *StageReport) fail(err error) {
	r.Failed = append(r.Failed, err)
}

// reject counts an item that is never fetched because its declared target is unsafe
func (r *StageReport) reject(url string, target string, err error) {
	r.Total++
	r.fail(&downloadmgr.FetchError{URL: url, Target: target, Err: err})
}

func (r *StageReport) merge(d *downloadmgr.Report) {
	r.Total += d.Total
	r.Failed = append(r.Failed, d.Failed...)
}

// InstallReport is the outcome of InstallVersion
type InstallReport struct {
	Version    string
	Descriptor *minecraft.LaunchManifest
	Assets     *StageReport
	Libraries  *StageReport
	Natives    *StageReport
}

// Err returns all stage errors combined or nil
func (r *InstallReport) Err() error {
	var merr *multierror.Error
	for _, stage := range []*StageReport{r.Assets, r.Libraries, r.Natives} {
		if err := stage.Err(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

// InstallVersion resolves the version and installs the client, assets, libraries
// and natives in that order. Metadata and client failures stop the pipeline.
// Item failures of the later stages are collected in the report, the returned
// error then combines them.
func (i *Installer) InstallVersion(ctx context.Context, req InstallRequest) (*InstallReport, error) {
	if req.Version == "" {
		return nil, ErrMissingVersion
	}

	report := &InstallReport{Version: req.Version}
	log := i.logger()
	log.Headline("Installing " + req.Version)

	desc, err := i.ResolveVersion(ctx, req)
	if err != nil {
		return report, &StageError{Stage: StageMetadata, Err: err}
	}
	report.Descriptor = desc
	log.Info("│ resolved version descriptor")

	if err := i.InstallClient(ctx, req, desc); err != nil {
		return report, &StageError{Stage: StageClient, Err: err}
	}
	log.Info("│ client jar installed")

	report.Assets = i.InstallAssets(ctx, req, desc)
	i.logStage(report.Assets)

	report.Libraries = i.InstallLibraries(ctx, req, desc)
	i.logStage(report.Libraries)

	report.Natives = i.InstallNatives(ctx, req, desc)
	i.logStage(report.Natives)

	return report, report.Err()
}

// InstallClient downloads the client jar into the version directory
func (i *Installer) InstallClient(ctx context.Context, req InstallRequest, desc *minecraft.LaunchManifest) error {
	l := req.layout()
	url := desc.Downloads.Client.URL
	if url == "" {
		return &MetadataError{Source: l.VersionJSON(req.Version), Err: errors.New("descriptor has no client download")}
	}
	if i.exists(l.ClientJar(req.Version)) {
		return nil
	}
	return i.Fetcher.Fetch(ctx, url, l.VersionDir(req.Version), req.Version+".jar")
}

func (i *Installer) manager(stage Stage) *downloadmgr.Manager {
	mgr := downloadmgr.New(i.Fetcher)
	if i.OnProgress != nil {
		mgr.OnProgress = func(done, total int) { i.OnProgress(stage, done, total) }
	}
	return mgr
}

// exists reports whether target can be skipped
func (i *Installer) exists(target string) bool {
	if !i.SkipExisting {
		return false
	}
	_, err := os.Stat(target)
	return err == nil
}

func (i *Installer) logger() *cmdlog.Logger {
	if i.Logger == nil {
		return cmdlog.Discard()
	}
	return i.Logger
}

func (i *Installer) logStage(r *StageReport) {
	log := i.logger()
	for _, err := range r.Failed {
		log.Warn(err.Error())
	}
	log.Info("│ " + r.Summary())
}
