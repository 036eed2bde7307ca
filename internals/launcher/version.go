package launcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidVersion is returned if no minecraft version could be found in the requested version string
var ErrInvalidVersion = errors.New("supplied version does not contain a minecraft version")

var versionRegex = regexp.MustCompile(`\b1\.\d+(\.\d+)?\b`)

// Version is a requested version split into the base minecraft release and
// an optional custom variant layered on top of it
type Version struct {
	// Base is the minecraft release (for example "1.20.1")
	Base string
	// Custom is the full requested string if it differs from Base ("1.20.1-fabric").
	// It is empty for vanilla launches
	Custom string
}

// ParseVersion extracts the minecraft version from s. Everything that is more
// than the plain version turns s into a custom variant
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	base := versionRegex.FindString(s)
	if base == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	if base == s {
		return Version{Base: base}, nil
	}
	return Version{Base: base, Custom: s}, nil
}

// HasVariant returns true if a custom variant was requested
func (v Version) HasVariant() bool {
	return v.Custom != ""
}

// ClientVersion returns the version whose jar is put on the classpath.
// Fabric variants ship no own client jar and use the vanilla one
func (v Version) ClientVersion() string {
	if !v.HasVariant() || strings.Contains(v.Custom, "fabric") {
		return v.Base
	}
	return v.Custom
}

func (v Version) String() string {
	if v.HasVariant() {
		return v.Custom
	}
	return v.Base
}
