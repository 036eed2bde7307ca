package minecraft

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnsafePath is returned for declared paths and hashes that would leave
// the directory they are stored in
var ErrUnsafePath = errors.New("unsafe path")

// Artifact is an object describing a "thing" that can be downloaded
// It is used to download libraries, native bundles and the minecraft client itself
type Artifact struct {
	// Path of the jar file relative to the libraries folder (always uses "/")
	// Path is not set for the minecraft client itself
	Path string `json:"path,omitempty"`
	Sha1 string `json:"sha1"`
	// Size in bytes
	Size json.Number `json:"size"`
	// URL to download the jar file
	URL string `json:"url"`
}

// Dir returns everything but the final segment of the declared path
func (a *Artifact) Dir() string {
	dir, _ := path.Split(a.Path)
	return path.Clean(dir)
}

// FileName returns the final segment of the declared path
func (a *Artifact) FileName() string {
	return path.Base(a.Path)
}

// CheckPath returns an ErrUnsafePath error if the declared path is empty, absolute
// or points outside of the libraries folder
func (a *Artifact) CheckPath() error {
	if a.Path == "" || path.IsAbs(a.Path) || strings.ContainsAny(a.Path, `\:`) {
		return fmt.Errorf("%w: %q", ErrUnsafePath, a.Path)
	}
	clean := path.Clean(a.Path)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %q", ErrUnsafePath, a.Path)
	}
	return nil
}
