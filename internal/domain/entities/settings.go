package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StalenessPolicy selects when the copyright checker rechecks an existing
// header against the current year.
type StalenessPolicy string

const (
	// StalenessHistory rechecks when the file is not in the git history,
	// was last authored this year, or is currently staged.
	StalenessHistory StalenessPolicy = "history"
	// StalenessDiff rechecks whenever the file's diff against the
	// upstream baseline is non-empty.
	StalenessDiff StalenessPolicy = "diff"
)

// Settings is the top-level configuration for githooks. Every field is
// optional; zero values fall back to the defaults below.
type Settings struct {
	Owner           string              `yaml:"owner"`
	VersionFiles    []string            `yaml:"version_files"`
	StalenessPolicy StalenessPolicy     `yaml:"staleness_policy"`
	SkipModules     []string            `yaml:"skip_modules"`
	ModulePaths     []string            `yaml:"module_paths"`
	CommentStyles   map[string][]string `yaml:"comment_styles"`
}

// DefaultSettings returns the built-in configuration matching the
// documented hook behavior.
func DefaultSettings() *Settings {
	return &Settings{
		VersionFiles:    []string{"pyproject.toml", "setup.cfg"},
		StalenessPolicy: StalenessHistory,
		ModulePaths:     []string{".", "src"},
		CommentStyles: map[string][]string{
			string(StyleHash): {
				"cfg", "conf", "Dockerfile", "hcl", "ini", "Makefile",
				"properties", "ps1", "py", "sh", "txt", "tf", "toml",
				"yaml", "yml", "gitignore",
			},
			string(StyleDash):     {"lua"},
			string(StyleMarkdown): {"md"},
			string(StyleStar):     {"gradle", "groovy", "java", "js", "ts", "css"},
		},
	}
}

// NewSettings loads settings from the given YAML file, overlaying the
// defaults. Unknown comment styles are rejected so a typo does not
// silently disable header insertion for a whole extension group.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	for style := range settings.CommentStyles {
		switch CommentStyle(style) {
		case StyleHash, StyleDash, StyleMarkdown, StyleStar:
		default:
			return nil, fmt.Errorf("unknown comment style %q in %s", style, path)
		}
	}

	switch settings.StalenessPolicy {
	case StalenessHistory, StalenessDiff:
	default:
		return nil, fmt.Errorf(
			"unknown staleness policy %q in %s", settings.StalenessPolicy, path,
		)
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{".", ".config"}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".githooks.yaml",
		".githooks.yml",
		"githooks.yaml",
		"githooks.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// LoadSettings resolves settings for a controller invocation: an explicit
// path wins, then an auto-detected config file, then the defaults.
func LoadSettings(explicitPath string) (*Settings, error) {
	if explicitPath != "" {
		return NewSettings(explicitPath)
	}
	if found, err := FindConfigFile(); err == nil {
		return NewSettings(found)
	}
	return DefaultSettings(), nil
}

// styleOrder fixes the lookup precedence when a configuration lists the
// same extension under more than one style.
var styleOrder = []CommentStyle{StyleHash, StyleDash, StyleMarkdown, StyleStar}

// StyleFor returns the comment style registered for the given filename.
// The key is the last segment of the basename after the final dot, which
// makes extension-less names like Dockerfile and Makefile match whole.
func (it *Settings) StyleFor(filename string) (CommentStyle, bool) {
	base := filepath.Base(filename)
	ending := base
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			ending = base[i+1:]
			break
		}
	}
	for _, style := range styleOrder {
		for _, e := range it.CommentStyles[string(style)] {
			if e == ending {
				return style, true
			}
		}
	}
	return "", false
}
