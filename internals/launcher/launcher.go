// Package launcher turns an installed version into a java invocation and starts it.
// It only reads the on disk layout written by the installer.
package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/pkg/errors"
)

// heapDumpFlag is always passed, the official launcher does the same
const heapDumpFlag = "-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump"

// LaunchRequest is everything one launch needs to know
type LaunchRequest struct {
	// Version is the requested version, optionally decorated with a variant ("1.20.1-fabric")
	Version string
	// Root is the game root directory
	Root string
	// Username is the local player name
	Username string
	// MemoryMin is passed as -Xms (for example "512M"). Defaults to DefaultMinMemory
	MemoryMin string
	// MemoryMax is passed as -Xmx (for example "4G"). Defaults to DefaultMaxMemory()
	MemoryMax string
	// Java is the java binary. Defaults to "java"
	Java string
}

// Invocation is a fully composed java command
type Invocation struct {
	Java string
	Args []string
	// Dir is the working directory (the absolute game root)
	Dir      string
	Version  Version
	Identity *Identity
}

// String returns the command line (unquoted)
func (i *Invocation) String() string {
	return i.Java + " " + strings.Join(i.Args, " ")
}

// Composer builds and starts java invocations
type Composer struct {
	// Platform selects argument rules and the classpath separator
	Platform minecraft.Platform
	// Spawner starts the invocation
	Spawner Spawner
	Logger  *cmdlog.Logger
}

// NewComposer returns a Composer for the running platform using os/exec
func NewComposer(logger *cmdlog.Logger) *Composer {
	return &Composer{
		Platform: minecraft.CurrentPlatform(),
		Spawner:  &ExecSpawner{},
		Logger:   logger,
	}
}

func (c *Composer) logger() *cmdlog.Logger {
	if c.Logger == nil {
		return cmdlog.Discard()
	}
	return c.Logger
}

// Compose reads the installed descriptors of the requested version (and its variant)
// and returns the java invocation. If a variant is requested, the options file of the root is deleted
func (c *Composer) Compose(req LaunchRequest) (*Invocation, error) {
	log := c.logger()

	version, err := ParseVersion(req.Version)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(req.Root)
	if err != nil {
		return nil, err
	}
	l := layout.New(root)

	desc, err := readDescriptor(l, version.Base)
	if err != nil {
		return nil, err
	}

	if err := EnsureProfile(root); err != nil {
		return nil, errors.Wrap(err, "creating launcher profile")
	}

	username := req.Username
	if username == "" {
		username = "Player"
	}
	identity, err := ResolveIdentity(l.UserCacheFile(), username)
	if err != nil {
		log.Warn("No cached identity found, creating one")
		log.Log(err.Error())
		identity = MintIdentity(username)
	}

	required := desc.Libraries.JarNames(c.Platform)
	mainClass := desc.MainClass
	gameArgs := desc.ArgumentSource().Resolve(c.Platform)

	if version.HasVariant() {
		variant, err := readDescriptor(l, version.Custom)
		if err != nil {
			return nil, err
		}
		required = append(required, variant.Libraries.CoordinateJarNames(c.Platform)...)
		if variant.MainClass != "" {
			mainClass = variant.MainClass
		}
		switch {
		case variant.HasStructuredArguments():
			gameArgs = append(gameArgs, minecraft.StructuredArguments(variant.Arguments.Game).Resolve(c.Platform)...)
		case variant.MinecraftArguments != "":
			gameArgs = minecraft.LegacyArguments(variant.MinecraftArguments).Resolve(c.Platform)
		default:
			// nothing to replace, the base arguments stay
		}

		// stale options of another variant can crash the game
		if err := os.Remove(l.OptionsFile()); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	if mainClass == "" {
		return nil, fmt.Errorf("descriptor of %s has no main class", version)
	}

	jars, err := BuildClasspath(l.LibrariesDir(), required, version.Base)
	if err != nil {
		return nil, errors.Wrap(err, "building classpath")
	}
	classpath := append(jars, l.ClientJar(version.ClientVersion())).Join(c.Platform)

	memMin := req.MemoryMin
	if memMin == "" {
		memMin = DefaultMinMemory
	}
	memMax := req.MemoryMax
	if memMax == "" {
		memMax = DefaultMaxMemory()
	}

	args := []string{
		"-Djava.library.path=" + l.NativesDir(version.Base),
		"-Xmx" + memMax,
		"-Xms" + memMin,
		heapDumpFlag,
		"-cp",
		classpath,
		mainClass,
	}
	args = append(args, gameArgs...)

	versionType := desc.Type
	if versionType == "" {
		versionType = minecraft.TypeRelease
	}
	fields := newFields(fieldValues{
		username:    username,
		uuid:        identity.UUID,
		version:     version.Base,
		gameDir:     root,
		assetsDir:   l.AssetsDir(),
		versionType: versionType,
	})
	args = SubstituteArgs(args, fields)

	if left := unresolved(args); len(left) != 0 {
		log.Warnf("Unknown launch placeholders: %s", strings.Join(left, ", "))
		log.Log("Known placeholders: " + strings.Join(fields.Keys(), ", "))
	}

	java := req.Java
	if java == "" {
		java = "java"
	}

	return &Invocation{
		Java:     java,
		Args:     args,
		Dir:      root,
		Version:  version,
		Identity: identity,
	}, nil
}

func readDescriptor(l layout.Layout, version string) (*minecraft.LaunchManifest, error) {
	desc := &minecraft.LaunchManifest{}
	if err := utils.ReadJSONFile(l.VersionJSON(version), desc); err != nil {
		return nil, errors.Wrapf(err, "reading descriptor of %s (is it installed?)", version)
	}
	return desc, nil
}
