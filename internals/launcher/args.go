package launcher

import (
	"regexp"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	defaultResolutionWidth  = 856
	defaultResolutionHeight = 482
)

var placeholderRegex = regexp.MustCompile(`^\$\{[a-zA-Z0-9_]+\}$`)

// Fields maps placeholder tokens ("${auth_player_name}") to their values
type Fields map[string]string

// Keys returns all placeholders sorted
func (f Fields) Keys() []string {
	keys := maps.Keys(f)
	slices.Sort(keys)
	return keys
}

type fieldValues struct {
	username    string
	uuid        string
	version     string
	gameDir     string
	assetsDir   string
	versionType string
}

func newFields(v fieldValues) Fields {
	return Fields{
		"${auth_access_token}": v.uuid,
		"${auth_session}":      v.uuid,
		"${auth_player_name}":  v.username,
		"${auth_uuid}":         v.uuid,
		"${auth_xuid}":         v.uuid,
		"${user_properties}":   "{}",
		"${user_type}":         "mojang",
		"${version_name}":      v.version,
		// the asset index is stored under the version name
		"${assets_index_name}": v.version,
		"${game_directory}":    v.gameDir,
		"${assets_root}":       v.assetsDir,
		"${game_assets}":       v.assetsDir,
		"${version_type}":      v.versionType,
		"${clientid}":          v.uuid,
		"${resolution_width}":  strconv.Itoa(defaultResolutionWidth),
		"${resolution_height}": strconv.Itoa(defaultResolutionHeight),
	}
}

// SubstituteArgs returns a copy of args where every token that equals a key of fields
// is replaced by its value. Other tokens, including ones that only contain a placeholder, are kept
func SubstituteArgs(args []string, fields Fields) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if v, ok := fields[arg]; ok {
			out[i] = v
			continue
		}
		out[i] = arg
	}
	return out
}

// unresolved returns all tokens that still look like a placeholder
func unresolved(args []string) []string {
	left := []string{}
	for _, arg := range args {
		if placeholderRegex.MatchString(arg) {
			left = append(left, arg)
		}
	}
	return left
}
