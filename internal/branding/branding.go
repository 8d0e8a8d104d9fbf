// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed, so a fork only has to edit the YAML and
// rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// defaults holds the parsed branding values, loaded once on first access.
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
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	LicenseName string `yaml:"license_name"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "rek",
			DisplayName: "REK : RoLib Extension Kit",
			Description: "Create and manage packages for RoLib",
			HomeDir:     ".rek",
			EnvPrefix:   "REK",
			GoModule:    "github.com/blockguard-sf/rek",
			GitHubRepo:  "blockguard-sf/REK",
			LicenseName: "Apache-2.0",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "rek").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".rek").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "REK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string (e.g., "blockguard-sf/REK").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// LicenseName returns the project license identifier.
func LicenseName() string { load(); return defaults.LicenseName }

// ReleasesURL returns the human-facing URL of the latest release page.
func ReleasesURL() string {
	load()
	return "https://github.com/" + defaults.GitHubRepo + "/releases/latest"
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "REK_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
