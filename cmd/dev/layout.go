package dev

import (
	"fmt"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "layout [version]",
		Short: "Prints where everything of a version is stored",
		Args:  cobra.MaximumNArgs(1),
	}, &layoutRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type layoutRunner struct{}

func (i *layoutRunner) RunE(cmd *cobra.Command, args []string) error {
	l := layout.New(viper.GetString("root"))
	version := "<version>"
	if len(args) == 1 {
		version = args[0]
	}

	fmt.Println("root:       " + l.Root)
	fmt.Println("manifest:   " + l.VersionManifestFile())
	fmt.Println("descriptor: " + l.VersionJSON(version))
	fmt.Println("client:     " + l.ClientJar(version))
	fmt.Println("assets:     " + l.AssetObjectsDir())
	fmt.Println("libraries:  " + l.LibrariesDir())
	fmt.Println("natives:    " + l.NativesDir(version))
	fmt.Println("lock:       " + l.LockFile())
	return nil
}
