package minecraft

import (
	"strings"
)

// Libraries as a collection of minecraft libs
type Libraries []Lib

// Required returns the libraries whose rules apply to platform p
func (l Libraries) Required(p Platform) Libraries {
	required := make(Libraries, 0, len(l))
	for _, lib := range l {
		// did some rules not apply? skip this library
		if !lib.Rules.AppliesTo(p) {
			continue
		}
		required = append(required, lib)
	}
	return required
}

// Artifacts returns all libraries that declare a downloadable artifact
func (l Libraries) Artifacts() Libraries {
	withArtifact := make(Libraries, 0, len(l))
	for _, lib := range l {
		if lib.HasArtifact() {
			withArtifact = append(withArtifact, lib)
		}
	}
	return withArtifact
}

// JarNames returns the file names of all declared artifacts required on p
func (l Libraries) JarNames(p Platform) []string {
	names := make([]string, 0, len(l))
	for _, lib := range l.Required(p).Artifacts() {
		names = append(names, lib.Downloads.Artifact.FileName())
	}
	return names
}

// CoordinateJarNames returns file names derived from the coordinate strings of all libraries
// required on p. Used for variant manifests that usually do not declare artifact paths.
func (l Libraries) CoordinateJarNames(p Platform) []string {
	names := make([]string, 0, len(l))
	for _, lib := range l.Required(p) {
		if name := lib.CoordinateJarName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Lib is a minecraft library
type Lib struct {
	// Name is the maven coordinate ("group:artifact:version")
	Name      string `json:"name"`
	Downloads struct {
		Artifact *Artifact `json:"artifact,omitempty"`
		// Classifiers is a list of additional artifacts.
		// It is used to download native libraries.
		// This field is no longer used after 1.19
		Classifiers map[string]Artifact `json:"classifiers,omitempty"`
	} `json:"downloads"`
	// URL is a maven repository base (used by variant manifests)
	URL string `json:"url,omitempty"`
	// Rules is a list of rules that determine whether this library should be included.
	Rules Rules `json:"rules,omitempty"`
	// Natives is a map of OS names to native classifier keys.
	// The key may contain a ${arch} placeholder
	Natives map[string]string `json:"natives,omitempty"`
}

// HasArtifact returns true if the library declares a downloadable artifact
func (l *Lib) HasArtifact() bool {
	a := l.Downloads.Artifact
	return a != nil && a.Path != "" && a.URL != ""
}

// CoordinateJarName returns "<artifact>-<version>.jar" derived from the last
// two segments of the coordinate string
func (l *Lib) CoordinateJarName() string {
	parts := strings.Split(l.Name, ":")
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[len(parts)-2:], "-") + ".jar"
}

// NativeBundle returns the native classifier artifact for the given platform
func (l *Lib) NativeBundle(p Platform) (*Artifact, bool) {
	if len(l.Downloads.Classifiers) == 0 {
		return nil, false
	}

	// explicit mapping wins
	if key, ok := l.Natives[p.mojangOS()]; ok {
		key = strings.ReplaceAll(key, "${arch}", p.bits())
		native, ok := l.Downloads.Classifiers[key]
		if !ok {
			return nil, false
		}
		return &native, true
	}

	for _, key := range p.NativeClassifiers() {
		if native, ok := l.Downloads.Classifiers[key]; ok {
			return &native, true
		}
	}
	return nil, false
}
