package domain

import "path/filepath"

// Variant is one candidate for a logical requirement.
// An empty OS or Arch matches any platform.
type Variant struct {
	// OS restricts the variant to one operating system family.
	OS OS

	// Arch restricts the variant to one processor word size.
	Arch Arch

	// Package is the package identifier installed when the variant wins (e.g., "vendor/db-win64").
	Package string

	// Constraint is the version constraint for Package (e.g., "^1.0").
	Constraint string
}

// Matches reports whether the variant applies to the given platform.
func (v Variant) Matches(p Platform) bool {
	if v.Arch != "" && v.Arch != p.Arch {
		return false
	}
	if v.OS != "" && v.OS != p.OS {
		return false
	}
	return true
}

// Requirement is a logical dependency name with its ordered variants.
type Requirement struct {
	Name     string
	Variants []Variant
}

// Manifest is the platform-specific part of a project configuration.
type Manifest struct {
	// Path is the configuration file the manifest was read from.
	Path string

	// Root is the directory containing the configuration file.
	Root string

	// Strategy names how resolved variants are applied.
	Strategy string

	// VendorDir is where packages are installed, relative to Root.
	VendorDir string

	// Repositories lists package index files, relative to Root.
	Repositories []string

	// Require is the project's root requirement set (package -> constraint).
	Require map[string]string

	// Requirements are the platform-specific requirements in declaration order.
	Requirements []Requirement
}

// VendorPath returns the absolute vendor directory of the manifest.
func (m *Manifest) VendorPath() string {
	if filepath.IsAbs(m.VendorDir) {
		return m.VendorDir
	}
	return filepath.Join(m.Root, m.VendorDir)
}

// Match is the variant chosen for a requirement.
type Match struct {
	Package    string `json:"package" yaml:"package"`
	Constraint string `json:"constraint" yaml:"constraint"`
	// Index is the position of the winning variant in the requirement's list.
	Index int `json:"variant" yaml:"variant"`
}

// Resolution is the outcome of one resolution pass.
type Resolution struct {
	Resolved   map[string]Match `json:"resolved" yaml:"resolved"`
	Unresolved []string         `json:"unresolved" yaml:"unresolved"`
}
