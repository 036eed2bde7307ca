package launcher

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"golang.org/x/exp/slices"
)

// legacyClasspathVersions need every matching jar, including the conflicting ones
var legacyClasspathVersions = []string{"1.14", "1.14.1", "1.14.2", "1.14.3"}

// conflictingJar marks jars that break every version outside of legacyClasspathVersions
const conflictingJar = "3.2.1"

// Classpath is an ordered list of jar files
type Classpath []string

// Join joins the entries with the classpath separator of p
func (c Classpath) Join(p minecraft.Platform) string {
	return strings.Join(c, p.ClasspathSeparator())
}

// BuildClasspath walks libRoot and returns the full path of every jar whose
// file name is in required, in walk order
func BuildClasspath(libRoot string, required []string, version string) (Classpath, error) {
	legacy := slices.Contains(legacyClasspathVersions, version)

	jars := Classpath{}
	err := filepath.WalkDir(libRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		if filepath.Ext(name) != ".jar" || !slices.Contains(required, name) {
			return nil
		}
		if !legacy && strings.Contains(name, conflictingJar) {
			return nil
		}
		jars = append(jars, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jars, nil
}
