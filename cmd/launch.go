package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/launcher"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runner := &launchRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "launch [version]",
		Short: "Launches an installed Minecraft version",
		Long: `Launches an installed version. Variants like fabric are launched with their
full version name ("1.20.1-fabric") and need to be installed into the versions folder.`,
		Aliases: []string{"run", "start", "play"},
		Args:    cobra.MaximumNArgs(1),
	}, runner)

	cmd.Flags().BoolVar(&runner.dryRun, "dry-run", false, "Print the java command instead of running it")
	runner.overwrites = launcher.CmdOverwriteFlags(cmd.Command)

	rootCmd.AddCommand(cmd.Command)
}

type launchRunner struct {
	dryRun     bool
	overwrites *launcher.OverwriteFlags
}

func (l *launchRunner) RunE(cmd *cobra.Command, args []string) error {
	version := ""
	if len(args) == 1 {
		version = args[0]
	} else {
		selected, err := selectInstalledVersion(layout.New(viper.GetString("root")))
		if err != nil {
			return err
		}
		version = selected
	}

	req := launchRequest(version)
	l.overwrites.Apply(&req)

	composer := launcher.NewComposer(logger)

	if l.dryRun {
		inv, err := composer.Compose(req)
		if err != nil {
			return friendlyError(err)
		}
		fmt.Println(inv.String())
		return nil
	}

	fmt.Println(commands.Banner("⛏  ", "Launching Minecraft"))
	p, err := composer.Launch(cmd.Context(), req)
	if err != nil {
		return friendlyError(err)
	}
	if err := p.Wait(); err != nil {
		return err
	}
	fmt.Println("\nMinecraft was stopped normally")
	return nil
}

func selectInstalledVersion(l layout.Layout) (string, error) {
	versions, err := installedVersions(l)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", &commands.CliError{
			Text:        "no versions are installed in " + l.Root,
			Suggestions: []string{"Install one with \"mclaunch install latest\""},
		}
	}
	if len(versions) == 1 {
		return versions[0], nil
	}
	if nonInteractive() {
		return "", &commands.CliError{
			Text: "no version supplied",
			Help: "Installed versions: " + fmt.Sprint(versions),
		}
	}

	return utils.SelectPrompt(&promptui.Select{
		Label: "Version to launch",
		Items: versions,
	})
}
