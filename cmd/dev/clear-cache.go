package dev

import (
	"fmt"
	"os"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/layout"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "clear-cache",
		Short: "Clears the cached version manifest and asset indexes",
	}, &clearCacheRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type clearCacheRunner struct{}

func (i *clearCacheRunner) RunE(cmd *cobra.Command, args []string) error {
	cacheDir := layout.New(viper.GetString("root")).CacheJSONDir()

	if err := os.RemoveAll(cacheDir); err != nil {
		return err
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}
	fmt.Println("Cleared " + cacheDir)
	return nil
}
