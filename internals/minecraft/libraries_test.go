package minecraft

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLib_CoordinateJarName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"net.fabricmc:fabric-loader:0.14.21", "fabric-loader-0.14.21.jar"},
		{"org.ow2.asm:asm:9.5", "asm-9.5.jar"},
		{"invalid", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := Lib{Name: tt.name}
			if got := lib.CoordinateJarName(); got != tt.want {
				t.Errorf("CoordinateJarName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLib_NativeBundle(t *testing.T) {
	raw := []byte(`{
		"name": "org.lwjgl.lwjgl:lwjgl-platform:2.9.4",
		"downloads": {
			"classifiers": {
				"natives-linux": {"path": "a/natives-linux.jar", "url": "https://example.com/linux"},
				"natives-osx": {"path": "a/natives-osx.jar", "url": "https://example.com/osx"},
				"natives-windows": {"path": "a/natives-windows.jar", "url": "https://example.com/windows"},
				"natives-windows-64": {"path": "a/natives-windows-64.jar", "url": "https://example.com/windows-64"}
			}
		}
	}`)
	var lib Lib
	if err := json.Unmarshal(raw, &lib); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		platform Platform
		wantURL  string
	}{
		{Platform{"windows", "amd64"}, "https://example.com/windows-64"},
		{Platform{"windows", "386"}, "https://example.com/windows"},
		{Platform{"linux", "amd64"}, "https://example.com/linux"},
		{Platform{"darwin", "arm64"}, "https://example.com/osx"},
		{Platform{"freebsd", "amd64"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.platform.OS+"/"+tt.platform.Arch, func(t *testing.T) {
			got, ok := lib.NativeBundle(tt.platform)
			if tt.wantURL == "" {
				if ok {
					t.Fatalf("expected no bundle, got %+v", got)
				}
				return
			}
			if !ok || got.URL != tt.wantURL {
				t.Errorf("NativeBundle() = %+v, want url %s", got, tt.wantURL)
			}
		})
	}

	// explicit natives mapping with arch placeholder
	lib.Natives = map[string]string{"windows": "natives-windows-${arch}"}
	got, ok := lib.NativeBundle(Platform{"windows", "amd64"})
	if !ok || got.URL != "https://example.com/windows-64" {
		t.Errorf("NativeBundle() with natives mapping = %+v", got)
	}
}

func TestLibraries_JarNames(t *testing.T) {
	libs := Libraries{
		{Name: "a:a:1"},
		{Name: "b:b:2"},
	}
	libs[1].Downloads.Artifact = &Artifact{Path: "b/b/2/b-2.jar", URL: "https://example.com/b-2.jar"}

	names := libs.JarNames(Platform{"linux", "amd64"})
	if len(names) != 1 || names[0] != "b-2.jar" {
		t.Errorf("JarNames() = %q", names)
	}
	if dir := libs[1].Downloads.Artifact.Dir(); dir != "b/b/2" {
		t.Errorf("Artifact.Dir() = %q", dir)
	}
}

func TestLibraries_Required(t *testing.T) {
	osxOnly := Lib{Name: "org.lwjgl.lwjgl:lwjgl:2.9.2-nightly-20140822", Rules: Rules{{Action: "allow", OS: OS{Name: "osx"}}}}
	osxOnly.Downloads.Artifact = &Artifact{Path: "org/lwjgl/lwjgl/lwjgl/2.9.2/lwjgl-2.9.2.jar", URL: "https://example.com/lwjgl-2.9.2.jar"}
	notOsx := Lib{Name: "org.lwjgl.lwjgl:lwjgl:2.9.4-nightly-20150209", Rules: Rules{{Action: "allow"}, {Action: "disallow", OS: OS{Name: "osx"}}}}
	notOsx.Downloads.Artifact = &Artifact{Path: "org/lwjgl/lwjgl/lwjgl/2.9.4/lwjgl-2.9.4.jar", URL: "https://example.com/lwjgl-2.9.4.jar"}
	libs := Libraries{{Name: "com.mojang:plain:1.0"}, osxOnly, notOsx}

	tests := []struct {
		platform    Platform
		required    []string
		jars        []string
		coordinates []string
	}{
		{
			Platform{"windows", "amd64"},
			[]string{"com.mojang:plain:1.0", "org.lwjgl.lwjgl:lwjgl:2.9.4-nightly-20150209"},
			[]string{"lwjgl-2.9.4.jar"},
			[]string{"plain-1.0.jar", "lwjgl-2.9.4-nightly-20150209.jar"},
		},
		{
			Platform{"darwin", "arm64"},
			[]string{"com.mojang:plain:1.0", "org.lwjgl.lwjgl:lwjgl:2.9.2-nightly-20140822"},
			[]string{"lwjgl-2.9.2.jar"},
			[]string{"plain-1.0.jar", "lwjgl-2.9.2-nightly-20140822.jar"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.platform.OS, func(t *testing.T) {
			names := []string{}
			for _, lib := range libs.Required(tt.platform) {
				names = append(names, lib.Name)
			}
			if strings.Join(names, ",") != strings.Join(tt.required, ",") {
				t.Errorf("Required() = %v, want %v", names, tt.required)
			}
			if got := libs.JarNames(tt.platform); strings.Join(got, ",") != strings.Join(tt.jars, ",") {
				t.Errorf("JarNames() = %v, want %v", got, tt.jars)
			}
			if got := libs.CoordinateJarNames(tt.platform); strings.Join(got, ",") != strings.Join(tt.coordinates, ",") {
				t.Errorf("CoordinateJarNames() = %v, want %v", got, tt.coordinates)
			}
		})
	}
}

func TestArtifact_CheckPath(t *testing.T) {
	tests := []struct {
		path string
		ok   bool
	}{
		{"com/mojang/foo/1.0/foo-1.0.jar", true},
		{"com/mojang/../foo-1.0.jar", true},
		{"", false},
		{"../../escaped/evil.jar", false},
		{"com/../../evil.jar", false},
		{"/etc/evil.jar", false},
		{`..\evil.jar`, false},
		{"C:/evil.jar", false},
		{"..", false},
	}
	for _, tt := range tests {
		a := Artifact{Path: tt.path}
		err := a.CheckPath()
		if (err == nil) != tt.ok {
			t.Errorf("CheckPath(%q) = %v", tt.path, err)
		}
		if err != nil && !errors.Is(err, ErrUnsafePath) {
			t.Errorf("CheckPath(%q) should wrap ErrUnsafePath, got %v", tt.path, err)
		}
	}
}

func TestAssetObject_CheckHash(t *testing.T) {
	tests := []struct {
		hash string
		ok   bool
	}{
		{"bdf48ef6b5d0d23bbb02e17d04865216179f510a", true},
		{"BDF48EF6B5D0D23BBB02E17D04865216179F510A", true},
		{"bdf48ef6", false},
		{"../../../../../../../../../../escaped/evil", false},
		{"zzf48ef6b5d0d23bbb02e17d04865216179f510a", false},
		{"", false},
	}
	for _, tt := range tests {
		a := AssetObject{Hash: tt.hash}
		if err := a.CheckHash(); (err == nil) != tt.ok {
			t.Errorf("CheckHash(%q) = %v", tt.hash, err)
		}
	}
}

func TestAssetIndex_Unique(t *testing.T) {
	idx := AssetIndex{Objects: map[string]AssetObject{
		"minecraft/sounds/a.ogg": {Hash: "bdf48ef6b5d0d23bbb02e17d04865216179f510a", Size: 10},
		"minecraft/sounds/b.ogg": {Hash: "bdf48ef6b5d0d23bbb02e17d04865216179f510a", Size: 10},
		"icons/icon_16x16.png":   {Hash: "0a2bd2e9cd5d9b8f3c1e5c7e2b2e0c0b3a4f5d6e", Size: 5},
	}}

	unique := idx.Unique()
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique objects, got %d", len(unique))
	}
	if unique[0].UnixPath() != "0a/0a2bd2e9cd5d9b8f3c1e5c7e2b2e0c0b3a4f5d6e" {
		t.Errorf("unexpected path %s", unique[0].UnixPath())
	}
	if idx.TotalSize() != 15 {
		t.Errorf("TotalSize() = %d, want 15", idx.TotalSize())
	}
}
