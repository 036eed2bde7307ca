package minecraft

import (
	"github.com/Masterminds/semver/v3"
)

// VersionManifestURL is the global version catalog hosted by mojang
const VersionManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

var (
	// TypeSnapshot is a snapshot release
	TypeSnapshot = "snapshot"
	// TypeRelease is a full "normal" release
	TypeRelease = "release"
	// TypeOldBeta is a "old_beta" release
	TypeOldBeta = "old_beta"
	// TypeOldAlpha is a "old_alpha" release
	TypeOldAlpha = "old_alpha"
)

// Release is one entry of the version manifest
type Release struct {
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	URL         string `json:"url" yaml:"url"`
	Time        string `json:"time,omitempty" yaml:"time,omitempty"`
	ReleaseTime string `json:"releaseTime,omitempty" yaml:"releaseTime,omitempty"`
}

// VersionManifest is the catalog of all minecraft versions (newest first)
type VersionManifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []Release `json:"versions"`
}

// FindRelease returns the entry with the given id. Only entries of type
// "release" are considered; snapshots and old versions never match.
func (m *VersionManifest) FindRelease(id string) (*Release, bool) {
	for i := range m.Versions {
		v := &m.Versions[i]
		if v.Type == TypeRelease && v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// Matching returns all entries satisfying the constraint in manifest order.
// A nil constraint matches everything. Ids that are no valid semver are
// skipped when a constraint is set. Only releases are returned unless allTypes is set.
func (m *VersionManifest) Matching(c *semver.Constraints, allTypes bool) []Release {
	matching := make([]Release, 0, len(m.Versions))
	for _, v := range m.Versions {
		if !allTypes && v.Type != TypeRelease {
			continue
		}
		if c != nil {
			// TODO: some versions contain spaces
			parsed, err := semver.NewVersion(v.ID)
			if err != nil || !c.Check(parsed) {
				continue
			}
		}
		matching = append(matching, v)
	}
	return matching
}

// NewestMatching returns the newest release satisfying the constraint
func (m *VersionManifest) NewestMatching(c *semver.Constraints) (*Release, bool) {
	found := m.Matching(c, false)
	if len(found) == 0 {
		return nil, false
	}
	return &found[0], true
}
