package installer

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/utils"
)

// InstallAssets downloads the asset index and every object it references into
// the hash bucketed object store. Objects sharing a hash are fetched once,
// objects without a valid sha1 hash are reported as failures.
func (i *Installer) InstallAssets(ctx context.Context, req InstallRequest, desc *minecraft.LaunchManifest) *StageReport {
	report := &StageReport{Stage: StageAssets}
	l := req.layout()

	if desc.AssetIndex.URL == "" {
		report.fail(&MetadataError{Source: l.VersionJSON(req.Version), Err: errors.New("descriptor has no asset index")})
		return report
	}

	// the index is stored under the version name, this is what gets passed as assets_index_name
	indexName := req.Version + ".json"
	indexFile := filepath.Join(l.AssetIndexesDir(), indexName)
	if err := i.Fetcher.Fetch(ctx, desc.AssetIndex.URL, l.AssetIndexesDir(), indexName); err != nil {
		report.fail(&MetadataError{Source: desc.AssetIndex.URL, Err: err})
		return report
	}

	if err := utils.CopyFile(indexFile, filepath.Join(l.CacheJSONDir(), indexName)); err != nil {
		report.fail(err)
	}

	index := minecraft.AssetIndex{}
	if err := utils.ReadJSONFile(indexFile, &index); err != nil {
		report.fail(&MetadataError{Source: indexFile, Err: err})
		return report
	}

	report.Size = index.TotalSize()

	mgr := i.manager(StageAssets)
	for _, obj := range index.Unique() {
		if err := obj.CheckHash(); err != nil {
			report.reject(obj.DownloadURL(i.ResourceURL), obj.Hash, err)
			continue
		}
		dir := l.AssetBucketDir(obj.Bucket())
		if i.exists(filepath.Join(dir, obj.Hash)) {
			report.Skipped++
			continue
		}
		mgr.AddURL(obj.DownloadURL(i.ResourceURL), dir, obj.Hash)
	}

	report.merge(mgr.Start(ctx))
	return report
}
