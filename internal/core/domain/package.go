package domain

import (
	"maps"
	"slices"
	"time"
)

// Source describes where a package's sources can be checked out from.
type Source struct {
	Type      string `json:"type,omitempty"`
	URL       string `json:"url,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// Dist describes a downloadable archive of a package.
type Dist struct {
	Type      string `json:"type,omitempty"`
	URL       string `json:"url,omitempty"`
	Reference string `json:"reference,omitempty"`
	// Shasum is the hex checksum of the archive. Its length selects sha1 or sha256.
	Shasum string `json:"shasum,omitempty"`
}

// Package is the metadata of one package version known to a repository.
type Package struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Type        string            `json:"type,omitempty"`
	Description string            `json:"description,omitempty"`
	Homepage    string            `json:"homepage,omitempty"`
	License     []string          `json:"license,omitempty"`
	Source      *Source           `json:"source,omitempty"`
	Dist        *Dist             `json:"dist,omitempty"`
	Require     map[string]string `json:"require,omitempty"`
	Extra       map[string]any    `json:"extra,omitempty"`

	// Repository is the name of the repository the package was loaded from.
	Repository string `json:"-"`
	// TargetDir overrides the install location inside the vendor directory.
	TargetDir   string     `json:"target-dir,omitempty"`
	ReleaseDate *time.Time `json:"time,omitempty"`
}

// ClonePackage copies the metadata of src under a new package name.
// ID, Repository, TargetDir and ReleaseDate describe where a concrete package
// lives and are left empty. Maps, slices and nested Extra values are copied
// so the clone shares no state with src.
func ClonePackage(src *Package, name string) *Package {
	clone := &Package{
		Name:        name,
		Version:     src.Version,
		Type:        src.Type,
		Description: src.Description,
		Homepage:    src.Homepage,
		License:     slices.Clone(src.License),
		Require:     maps.Clone(src.Require),
	}
	if src.Extra != nil {
		clone.Extra, _ = cloneValue(src.Extra).(map[string]any)
	}
	if src.Source != nil {
		s := *src.Source
		clone.Source = &s
	}
	if src.Dist != nil {
		d := *src.Dist
		clone.Dist = &d
	}
	return clone
}

// cloneValue copies the map and slice shapes produced by decoding JSON.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
