package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/installer"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "install [version]",
		Short: "Installs a Minecraft release",
		Long: `Downloads the client, assets, libraries and natives of a release.
The version can be an exact release ("1.20.1"), "latest" or a semver constraint ("~1.19").`,
		Aliases: []string{"isntall", "i"},
		Args:    cobra.MaximumNArgs(1),
	}, &installRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type installRunner struct{}

func (i *installRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	root := viper.GetString("root")
	l := layout.New(root)

	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return err
	}

	unlock, err := lockRoot(ctx, l)
	if err != nil {
		return err
	}
	defer unlock()

	inst := newInstaller()

	manifest, err := inst.FetchManifest(ctx, root)
	if err != nil {
		return err
	}
	requested := ""
	if len(args) == 1 {
		requested = args[0]
	}
	version, err := resolveInstallVersion(manifest, requested)
	if err != nil {
		return friendlyError(err)
	}

	s := launcher.NewMaybeSpinner(!nonInteractive())
	if s.Spin {
		// the spinner shows progress, stage summaries are printed afterwards
		inst.Logger = cmdlog.Discard()
		inst.OnProgress = func(stage installer.Stage, done, total int) {
			s.Update(fmt.Sprintf("%s %d/%d", stage, done, total))
		}
	}
	s.Update("Installing " + utils.PrettyVersion(version))

	start := time.Now()
	s.Start()
	report, err := inst.InstallVersion(ctx, installer.InstallRequest{Version: version, Root: root, Manifest: manifest})
	s.Stop()

	if s.Spin && report != nil {
		for _, stage := range []*installer.StageReport{report.Assets, report.Libraries, report.Natives} {
			if stage != nil {
				logger.Info("│ " + stage.Summary())
			}
		}
	}

	if report != nil && report.Assets != nil && report.Assets.Size != 0 {
		logger.Log("│ Asset index declares " + humanize.Bytes(uint64(report.Assets.Size)))
	}

	files, bytes := inst.Fetcher.Stats()
	logger.Infof(
		"│ Downloaded %d files (%s) in %s",
		files,
		humanize.Bytes(uint64(bytes)),
		time.Since(start).Round(time.Millisecond),
	)

	if err != nil {
		return friendlyError(err)
	}

	fmt.Println(commands.Banner("✔️  ", "Installed "+version))
	logger.Log("Launch it with: mclaunch launch " + version)
	return nil
}

// lockRoot makes sure only one install runs against a root at a time
func lockRoot(ctx context.Context, l layout.Layout) (func(), error) {
	lock := flock.New(l.LockFile())

	lockCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, 250*time.Millisecond)
	if err != nil || !locked {
		return nil, &commands.CliError{
			Text:        "another install is running in " + l.Root,
			Suggestions: []string{"Wait for it to finish", "Remove " + l.LockFile() + " if no install is running"},
			Err:         err,
		}
	}
	return func() { lock.Unlock() }, nil
}

// resolveInstallVersion turns the requested string into a release id.
// Empty and "latest" resolve to the latest release, constraints to the newest matching release
func resolveInstallVersion(m *minecraft.VersionManifest, requested string) (string, error) {
	if requested == "" || requested == "latest" {
		if m.Latest.Release == "" {
			return "", fmt.Errorf("%w: manifest has no latest release", installer.ErrVersionNotFound)
		}
		return m.Latest.Release, nil
	}

	if _, ok := m.FindRelease(requested); ok {
		return requested, nil
	}

	c, err := semver.NewConstraint(requested)
	if err != nil {
		// not a constraint, let the installer report it
		return requested, nil
	}
	release, ok := m.NewestMatching(c)
	if !ok {
		return "", fmt.Errorf("%w: no release matches %s", installer.ErrVersionNotFound, requested)
	}
	return release.ID, nil
}
