package installer

import (
	"context"
	"fmt"

	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/utils"
)

// FetchManifest downloads the version manifest into the metadata cache of root and parses it
func (i *Installer) FetchManifest(ctx context.Context, root string) (*minecraft.VersionManifest, error) {
	l := layout.New(root)

	if err := i.Fetcher.Fetch(ctx, i.ManifestURL, l.CacheJSONDir(), "version_manifest.json"); err != nil {
		return nil, &MetadataError{Source: i.ManifestURL, Err: err}
	}

	manifest := &minecraft.VersionManifest{}
	if err := utils.ReadJSONFile(l.VersionManifestFile(), manifest); err != nil {
		return nil, &MetadataError{Source: l.VersionManifestFile(), Err: err}
	}
	return manifest, nil
}

// ResolveVersion looks up the release in the manifest, stores its descriptor in
// the version directory and returns it parsed. Only release versions are found.
// The manifest is fetched unless the request carries one.
func (i *Installer) ResolveVersion(ctx context.Context, req InstallRequest) (*minecraft.LaunchManifest, error) {
	if req.Version == "" {
		return nil, ErrMissingVersion
	}
	l := req.layout()

	manifest := req.Manifest
	if manifest == nil {
		fetched, err := i.FetchManifest(ctx, req.Root)
		if err != nil {
			return nil, err
		}
		manifest = fetched
	}

	release, ok := manifest.FindRelease(req.Version)
	if !ok {
		return nil, fmt.Errorf("%w: %q is no release in the version manifest", ErrVersionNotFound, req.Version)
	}

	if err := i.Fetcher.Fetch(ctx, release.URL, l.VersionDir(req.Version), req.Version+".json"); err != nil {
		return nil, &MetadataError{Source: release.URL, Err: err}
	}

	desc := &minecraft.LaunchManifest{}
	if err := utils.ReadJSONFile(l.VersionJSON(req.Version), desc); err != nil {
		return nil, &MetadataError{Source: l.VersionJSON(req.Version), Err: err}
	}
	return desc, nil
}
