package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindBool
	configKindInt
	configKindFloat
)

type configEntry struct {
	// key is the viper key (case sensitive for the written file)
	key  string
	kind int
	help string
}

// config keys are matched lower case
var config = map[string]configEntry{
	"root":              {"root", configKindString, "game root directory"},
	"concurrency":       {"concurrency", configKindInt, "simultaneous downloads"},
	"manifesturl":       {"manifestUrl", configKindString, "version manifest location"},
	"resourceurl":       {"resourceUrl", configKindString, "asset object host"},
	"requestspersecond": {"requestsPerSecond", configKindFloat, "request rate limit (0 is unlimited)"},
	"skipexisting":      {"skipExisting", configKindBool, "skip downloads whose file already exists"},
	"username":          {"username", configKindString, "local player name"},
	"memory.min":        {"memory.min", configKindString, "initial java heap (-Xms)"},
	"memory.max":        {"memory.max", configKindString, "maximum java heap (-Xmx)"},
	"java":              {"java", configKindString, "java binary"},
	"noninteractive":    {"nonInteractive", configKindBool, "never show spinners or prompts"},
}

// SubCmd is the config command
var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}

// File returns the location of the config file
func File() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mclaunch", "config.toml"), nil
}
