package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get [key]",
		Short: "Gets a global config value (or all of them)",
		Args:  cobra.MaximumNArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		keys := make([]string, 0, len(config))
		for key := range config {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			entry := config[key]
			fmt.Printf("  %s: %v %s\n", entry.key, viper.Get(entry.key), gchalk.Dim("# "+entry.help))
		}
		return nil
	}

	key := strings.ToLower(args[0])
	entry, ok := config[key]
	if !ok {
		return unknownKey(key)
	}

	fmt.Printf("  %s: %v\n", entry.key, viper.Get(entry.key))
	return nil
}

func unknownKey(key string) error {
	return &commands.CliError{
		Text:        fmt.Sprintf("config key \"%s\" does not exist", key),
		Suggestions: []string{"Run \"mclaunch config get\" to list all keys"},
	}
}
