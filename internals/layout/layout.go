// Package layout knows where everything lives below a game root directory.
//
//	<root>/
//	  cache/json/                      version_manifest.json, <version>.json (asset index copy)
//	  versions/<version>/              <version>.json, <version>.jar
//	  assets/indexes/                  <version>.json
//	  assets/objects/<hash[0:2]>/      <hash>
//	  libraries/<group>/<artifact>/…   jars at their declared artifact path
//	  natives/<version>/               extracted native bundles
//	  launcher_profiles.json
//	  usercache.json
//	  options.txt
package layout

import (
	"path/filepath"
)

// Layout is the directory tree below Root. It is a value and safe to copy
type Layout struct {
	Root string
}

// New returns the layout for root
func New(root string) Layout {
	return Layout{Root: root}
}

// CacheJSONDir returns the path to the metadata cache directory
func (l Layout) CacheJSONDir() string {
	return filepath.Join(l.Root, "cache", "json")
}

// VersionManifestFile returns the cached version manifest path
func (l Layout) VersionManifestFile() string {
	return filepath.Join(l.CacheJSONDir(), "version_manifest.json")
}

// VersionsDir returns the path to the versions directory
func (l Layout) VersionsDir() string {
	return filepath.Join(l.Root, "versions")
}

// VersionDir returns the directory of one version
func (l Layout) VersionDir(version string) string {
	return filepath.Join(l.VersionsDir(), version)
}

// VersionJSON returns the descriptor path of a version
func (l Layout) VersionJSON(version string) string {
	return filepath.Join(l.VersionDir(version), version+".json")
}

// ClientJar returns the client jar path of a version
func (l Layout) ClientJar(version string) string {
	return filepath.Join(l.VersionDir(version), version+".jar")
}

// AssetsDir returns the path to the assets directory
func (l Layout) AssetsDir() string {
	return filepath.Join(l.Root, "assets")
}

// AssetIndexesDir returns the path to the asset index directory
func (l Layout) AssetIndexesDir() string {
	return filepath.Join(l.AssetsDir(), "indexes")
}

// AssetObjectsDir returns the root of the hash bucketed object store
func (l Layout) AssetObjectsDir() string {
	return filepath.Join(l.AssetsDir(), "objects")
}

// AssetBucketDir returns the directory for objects starting with bucket
func (l Layout) AssetBucketDir(bucket string) string {
	return filepath.Join(l.AssetObjectsDir(), bucket)
}

// LibrariesDir returns the path to the libraries directory
func (l Layout) LibrariesDir() string {
	return filepath.Join(l.Root, "libraries")
}

// LibraryDir returns the directory of a library given its declared (slash separated) directory
func (l Layout) LibraryDir(artifactDir string) string {
	return filepath.Join(l.LibrariesDir(), filepath.FromSlash(artifactDir))
}

// NativesRoot returns the directory native bundles are downloaded to
func (l Layout) NativesRoot() string {
	return filepath.Join(l.Root, "natives")
}

// NativesDir returns the directory native bundles of a version are extracted to
func (l Layout) NativesDir(version string) string {
	return filepath.Join(l.NativesRoot(), version)
}

// ProfilesFile returns the launcher profile path
func (l Layout) ProfilesFile() string {
	return filepath.Join(l.Root, "launcher_profiles.json")
}

// UserCacheFile returns the local identity cache path
func (l Layout) UserCacheFile() string {
	return filepath.Join(l.Root, "usercache.json")
}

// OptionsFile returns the game options path
func (l Layout) OptionsFile() string {
	return filepath.Join(l.Root, "options.txt")
}

// LockFile returns the file used to serialize installs against this root
func (l Layout) LockFile() string {
	return filepath.Join(l.Root, ".mclaunch.lock")
}
