package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/minepkg/mclaunch/internals/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func init() {
	runner := &versionsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "versions",
		Short: "Lists available Minecraft versions",
		Example: `
  mclaunch versions -c "~1.20"
  mclaunch versions --all -o json`,
		Args: cobra.NoArgs,
	}, runner)

	cmd.Flags().StringVarP(&runner.constraint, "constraint", "c", "", "Only list versions matching this semver constraint")
	cmd.Flags().BoolVarP(&runner.all, "all", "a", false, "Include snapshots and old versions")
	cmd.Flags().StringVarP(&runner.output, "output", "o", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(cmd.Command)
}

type versionsRunner struct {
	constraint string
	all        bool
	output     string
}

func (v *versionsRunner) RunE(cmd *cobra.Command, args []string) error {
	var c *semver.Constraints
	if v.constraint != "" {
		parsed, err := semver.NewConstraint(v.constraint)
		if err != nil {
			return &commands.CliError{
				Text: fmt.Sprintf("invalid constraint %q: %s", v.constraint, err),
				Help: "Constraints look like ~1.20, >=1.16 <1.18 or 1.19.x",
			}
		}
		c = parsed
	}

	root := viper.GetString("root")
	manifest, err := newInstaller().FetchManifest(cmd.Context(), root)
	if err != nil {
		return err
	}
	releases := manifest.Matching(c, v.all)

	installed, err := installedVersions(layout.New(root))
	if err != nil {
		return err
	}
	return printReleases(os.Stdout, v.output, releases, installed)
}

func printReleases(w io.Writer, format string, releases []minecraft.Release, installed []string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(releases)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(releases)
	case "text", "":
		isInstalled := make(map[string]bool, len(installed))
		for _, v := range installed {
			isInstalled[v] = true
		}
		for _, r := range releases {
			line := fmt.Sprintf("%-24s %s", utils.PrettyVersion(r.ID), r.Type)
			if isInstalled[r.ID] {
				line += " (installed)"
			}
			fmt.Fprintln(w, line)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
