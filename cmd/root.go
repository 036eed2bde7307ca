package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/cmd/config"
	"github.com/minepkg/mclaunch/cmd/dev"
	"github.com/minepkg/mclaunch/internals/cmdlog"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set by main
	Version = "dev"
	// Commit is set by main
	Commit string
)

var logger = cmdlog.New()

var disableColors bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mclaunch",
	Short: "Install and launch Minecraft versions",
	Long:  "Downloads Minecraft versions with their assets, libraries and natives and starts them with java",

	Example: `
  mclaunch install 1.20.1
  mclaunch install "~1.19"
  mclaunch launch 1.20.1
  mclaunch launch 1.20.1-fabric --dry-run`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if Commit != "" {
		rootCmd.Version += " (" + Commit + ")"
	}
	// ctrl-c cancels running downloads instead of killing the process
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	viper.SetDefault("root", filepath.Join(home, ".mclaunch"))
	viper.SetDefault("concurrency", downloadmgr.DefaultMaxConnections)
	viper.SetDefault("manifestUrl", minecraft.VersionManifestURL)
	viper.SetDefault("resourceUrl", minecraft.ResourceURL)
	viper.SetDefault("requestsPerSecond", 0)
	viper.SetDefault("skipExisting", false)
	viper.SetDefault("username", "Player")
	viper.SetDefault("java", "java")
	viper.SetDefault("nonInteractive", false)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")
	rootCmd.PersistentFlags().String("root", "", "game root directory (default is $HOME/.mclaunch)")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "do not show spinners or prompts")
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("nonInteractive", rootCmd.PersistentFlags().Lookup("non-interactive"))

	rootCmd.AddCommand(config.SubCmd)
	rootCmd.AddCommand(dev.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		gchalk.SetLevel(gchalk.LevelNone)
		commands.EmojiEnabled = false
	}

	viper.SetEnvPrefix("MCLAUNCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	configFile, err := config.File()
	if err != nil {
		logger.Warn("Could not determine the config directory: " + err.Error())
		return
	}
	viper.SetConfigFile(configFile)

	// a missing config file is fine
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Could not read config file: " + err.Error())
	}
}
