// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed and overlaid on the
// hard defaults below, so a fork only has to edit the YAML file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ProjectDir  string `yaml:"project_dir"`
	ProjectFile string `yaml:"project_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "au",
			DisplayName: "Aurelia",
			Description: "Command line front controller for Aurelia projects",
			HomeDir:     ".au",
			EnvPrefix:   "AU",
			ProjectDir:  "aurelia_project",
			ProjectFile: "aurelia.json",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "au").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Aurelia").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".au").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AU").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ProjectDir returns the marker directory that identifies a project root.
func ProjectDir() string { load(); return defaults.ProjectDir }

// ProjectFile returns the model file name inside ProjectDir.
func ProjectFile() string { load(); return defaults.ProjectFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("env") → "AU_ENV".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
