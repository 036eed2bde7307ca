package cmd

import (
	"errors"
	"os"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/installer"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/minepkg/mclaunch/internals/ownhttp"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/viper"
)

// newInstaller builds an installer from the global config
func newInstaller() *installer.Installer {
	opts := ownhttp.DefaultOptions
	opts.RequestsPerSecond = viper.GetFloat64("requestsPerSecond")

	fetcher := downloadmgr.NewFetcher(ownhttp.NewWithOptions(opts), viper.GetInt64("concurrency"))

	i := installer.New(fetcher)
	i.ManifestURL = viper.GetString("manifestUrl")
	i.ResourceURL = viper.GetString("resourceUrl")
	i.SkipExisting = viper.GetBool("skipExisting")
	i.Logger = logger
	return i
}

// launchRequest builds a launch request for version from the global config
func launchRequest(version string) launcher.LaunchRequest {
	return launcher.LaunchRequest{
		Version:   version,
		Root:      viper.GetString("root"),
		Username:  viper.GetString("username"),
		MemoryMin: viper.GetString("memory.min"),
		MemoryMax: viper.GetString("memory.max"),
		Java:      viper.GetString("java"),
	}
}

func nonInteractive() bool {
	return viper.GetBool("nonInteractive")
}

// installedVersions returns every directory of the versions folder that contains a descriptor
func installedVersions(l layout.Layout) ([]string, error) {
	entries, err := os.ReadDir(l.VersionsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() && utils.FileExists(l.VersionJSON(entry.Name())) {
			versions = append(versions, entry.Name())
		}
	}
	return versions, nil
}

// friendlyError adds help texts to errors users can fix themself
func friendlyError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, installer.ErrVersionNotFound):
		return &commands.CliError{
			Text:        err.Error(),
			Suggestions: []string{"Only releases can be installed. Run \"mclaunch versions\" to list them"},
			Err:         err,
		}
	case errors.Is(err, launcher.ErrInvalidVersion):
		return &commands.CliError{
			Text: err.Error(),
			Help: "Versions look like 1.20.1 or 1.20.1-fabric",
			Err:  err,
		}
	case errors.Is(err, os.ErrNotExist):
		return &commands.CliError{
			Text:        err.Error(),
			Suggestions: []string{"Install the version first with \"mclaunch install\""},
			Err:         err,
		}
	}
	return err
}
