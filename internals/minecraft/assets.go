package minecraft

import (
	"fmt"
	"sort"
	"strings"
)

// ResourceURL is the default host serving asset objects
const ResourceURL = "https://resources.download.minecraft.net"

// AssetIndex is just a map containing AssetObjects
type AssetIndex struct {
	Objects map[string]AssetObject `json:"objects"`
}

// AssetObject is one minecraft asset
type AssetObject struct {
	Hash string `json:"hash"`
	Size int    `json:"size"`
}

// CheckHash returns an ErrUnsafePath error unless the hash is 40 hex characters.
// The hash is used as file name and bucket directory
func (a *AssetObject) CheckHash() error {
	if len(a.Hash) != 40 || strings.Trim(strings.ToLower(a.Hash), "0123456789abcdef") != "" {
		return fmt.Errorf("%w: asset hash %q", ErrUnsafePath, a.Hash)
	}
	return nil
}

// Bucket returns the two character hash prefix the object is stored under
func (a *AssetObject) Bucket() string {
	if len(a.Hash) < 2 {
		return ""
	}
	return a.Hash[:2]
}

// UnixPath returns the path including the folder
// example: fe/fe32f3b8…
func (a *AssetObject) UnixPath() string {
	return a.Bucket() + "/" + a.Hash
}

// DownloadURL returns the download url for this asset on the given resource host
func (a *AssetObject) DownloadURL(base string) string {
	return base + "/" + a.UnixPath()
}

// Unique returns every distinct object of the index once, ordered by hash.
// Logical names sharing a hash share one physical file.
func (i *AssetIndex) Unique() []AssetObject {
	seen := make(map[string]struct{}, len(i.Objects))
	unique := make([]AssetObject, 0, len(i.Objects))
	for _, obj := range i.Objects {
		if _, ok := seen[obj.Hash]; ok {
			continue
		}
		seen[obj.Hash] = struct{}{}
		unique = append(unique, obj)
	}
	sort.Slice(unique, func(a, b int) bool { return unique[a].Hash < unique[b].Hash })
	return unique
}

// TotalSize returns the summed size of all unique objects in bytes
func (i *AssetIndex) TotalSize() int64 {
	var total int64
	for _, obj := range i.Unique() {
		total += int64(obj.Size)
	}
	return total
}
