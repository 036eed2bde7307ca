package minecraft

import "runtime"

// Platform is an os/arch pair using Go's naming (GOOS / GOARCH)
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform returns the platform this binary is running on
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// mojangOS returns the os name as used in launch manifests
func (p Platform) mojangOS() string {
	if p.OS == "darwin" {
		return "osx"
	}
	return p.OS
}

// mojangArch returns the arch name as used in launch manifest rules
func (p Platform) mojangArch() string {
	switch p.Arch {
	case "amd64", "x86_64":
		return "x64"
	case "386", "i386":
		return "x86"
	case "arm":
		return "arm32"
	}
	// note: we don't know how other platforms are named
	return p.Arch
}

// bits returns "64" or "32". Used to expand the ${arch} placeholder in native classifiers
func (p Platform) bits() string {
	switch p.Arch {
	case "386", "i386", "arm":
		return "32"
	}
	return "64"
}

// NativeClassifiers returns the classifier keys that can hold native bundles
// for this platform, best match first
func (p Platform) NativeClassifiers() []string {
	switch p.OS {
	case "windows":
		if p.bits() == "32" {
			return []string{"natives-windows-32", "natives-windows"}
		}
		return []string{"natives-windows-64", "natives-windows"}
	case "darwin":
		return []string{"natives-osx", "natives-macos"}
	default:
		return []string{"natives-" + p.OS}
	}
}

// ClasspathSeparator returns the separator used to join classpath entries
func (p Platform) ClasspathSeparator() string {
	if p.OS == "windows" {
		return ";"
	}
	return ":"
}
