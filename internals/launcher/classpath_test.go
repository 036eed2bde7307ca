package launcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minepkg/mclaunch/internals/minecraft"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("jar"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildClasspath(t *testing.T) {
	libRoot := t.TempDir()
	jars := map[string]string{
		"foo":     filepath.Join(libRoot, "com", "mojang", "foo", "1.0", "foo-1.0.jar"),
		"lwjgl":   filepath.Join(libRoot, "org", "lwjgl", "lwjgl", "3.2.1", "lwjgl-3.2.1.jar"),
		"other":   filepath.Join(libRoot, "org", "other", "other-2.0.jar"),
		"notAJar": filepath.Join(libRoot, "org", "readme", "foo-1.0.txt"),
	}
	for _, jar := range jars {
		touch(t, jar)
	}
	required := []string{"foo-1.0.jar", "lwjgl-3.2.1.jar", "foo-1.0.txt"}

	tests := []struct {
		version string
		want    []string
	}{
		// 3.2.1 jars are excluded by default
		{version: "1.20.1", want: []string{jars["foo"]}},
		{version: "1.14.4", want: []string{jars["foo"]}},
		// but needed by some 1.14 versions
		{version: "1.14", want: []string{jars["foo"], jars["lwjgl"]}},
		{version: "1.14.3", want: []string{jars["foo"], jars["lwjgl"]}},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := BuildClasspath(libRoot, required, tt.version)
			if err != nil {
				t.Fatal(err)
			}
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("BuildClasspath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildClasspath_missingRoot(t *testing.T) {
	_, err := BuildClasspath(filepath.Join(t.TempDir(), "nope"), []string{"a.jar"}, "1.20.1")
	if err == nil {
		t.Error("expected an error for a missing library root")
	}
}

func TestClasspath_Join(t *testing.T) {
	cp := Classpath{"a.jar", "b.jar"}
	if got := cp.Join(linux); got != "a.jar:b.jar" {
		t.Errorf("Join(linux) = %s", got)
	}
	if got := cp.Join(minecraft.Platform{OS: "windows", Arch: "amd64"}); got != "a.jar;b.jar" {
		t.Errorf("Join(windows) = %s", got)
	}
}
