package minecraft

import (
	"strings"
)

// LaunchManifest is a version.json manifest that is used to install and launch minecraft versions
type LaunchManifest struct {
	ID string `json:"id"`
	// MinecraftArguments are used before 1.13
	MinecraftArguments string `json:"minecraftArguments,omitempty"`
	// Arguments is the new (complicated) system
	Arguments *Arguments `json:"arguments,omitempty"`
	Downloads struct {
		Client Artifact  `json:"client"`
		Server *Artifact `json:"server,omitempty"`
	} `json:"downloads"`
	Libraries  Libraries `json:"libraries"`
	Type       string    `json:"type"`
	MainClass  string    `json:"mainClass"`
	Assets     string    `json:"assets,omitempty"`
	AssetIndex struct {
		ID        string `json:"id"`
		Sha1      string `json:"sha1"`
		Size      int    `json:"size"`
		TotalSize int    `json:"totalSize"`
		URL       string `json:"url"`
	} `json:"assetIndex"`
	InheritsFrom string `json:"inheritsFrom,omitempty"`
}

// Arguments is the structured argument list introduced with 1.13
type Arguments struct {
	Game []Argument `json:"game"`
	JVM  []Argument `json:"jvm,omitempty"`
}

// ArgumentSource is where the game arguments of a manifest come from.
// It is either a [LegacyArguments] blob or [StructuredArguments].
type ArgumentSource interface {
	// Resolve returns the flat, ordered argument list for platform p
	Resolve(p Platform) []string
}

// LegacyArguments is the single string `minecraftArguments` blob
type LegacyArguments string

// Resolve splits the blob on whitespace
func (l LegacyArguments) Resolve(p Platform) []string {
	return strings.Fields(string(l))
}

// StructuredArguments is the `arguments.game` list
type StructuredArguments []Argument

// Resolve flattens all arguments whose rules apply to p
func (s StructuredArguments) Resolve(p Platform) []string {
	args := make([]string, 0, len(s))
	for _, arg := range s {
		if !arg.Rules.AppliesTo(p) {
			continue
		}
		args = append(args, arg.Value...)
	}
	return args
}

// HasStructuredArguments returns true if the manifest declares an `arguments` object
func (l *LaunchManifest) HasStructuredArguments() bool {
	return l.Arguments != nil
}

// ArgumentSource returns the game argument source of this manifest.
// The legacy blob wins if both are set
func (l *LaunchManifest) ArgumentSource() ArgumentSource {
	if l.MinecraftArguments != "" {
		return LegacyArguments(l.MinecraftArguments)
	}
	if l.Arguments != nil {
		return StructuredArguments(l.Arguments.Game)
	}
	return StructuredArguments(nil)
}
