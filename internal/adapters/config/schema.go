package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Platdepfile represents the structure of the platdep.yaml configuration file.
type Platdepfile struct {
	Version                 string            `yaml:"version"`
	Strategy                string            `yaml:"strategy"`
	VendorDir               string            `yaml:"vendor-dir"`
	Repositories            []string          `yaml:"repositories"`
	Require                 map[string]string `yaml:"require"`
	PlatformSpecificRequire yaml.Node         `yaml:"platform-specific-require"`
}

// Composerfile represents the parts of composer.json platdep reads.
type Composerfile struct {
	Require map[string]string `json:"require"`
	Config  ComposerConfig    `json:"config"`
	Extra   ComposerExtra     `json:"extra"`
}

// ComposerConfig is the "config" section of composer.json.
type ComposerConfig struct {
	VendorDir string `json:"vendor-dir"`
}

// ComposerExtra is the "extra" section of composer.json.
// PlatformSpecificRequire is kept raw so its key order survives decoding.
type ComposerExtra struct {
	PlatformSpecificRequire json.RawMessage `json:"platform-specific-require"`
	Strategy                string          `json:"platform-specific-strategy"`
	Repositories            []string        `json:"platform-specific-repositories"`
}
