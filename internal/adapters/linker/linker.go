// Package linker maintains the root requirement set extended with resolved
// platform-specific links.
package linker

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Link is the package a platform-specific requirement currently points at.
type Link struct {
	Package    string `json:"package"`
	Constraint string `json:"constraint"`
}

// Links is the on-disk shape of the links file. Require matches composer's
// "require" section and is rebuilt from the root requirements and Platform.
type Links struct {
	Require  map[string]string `json:"require"`
	Platform map[string]Link   `json:"platform-require"`
}

// Linker implements ports.RequirementLinker.
type Linker struct {
	mu sync.Mutex
}

// New creates a new Linker.
func New() *Linker {
	return &Linker{}
}

// Link points requirement at pkg and writes the rebuilt links file.
// Links of requirements the manifest no longer declares are dropped.
// Nothing is written when the links are unchanged.
func (l *Linker) Link(manifest *domain.Manifest, requirement, pkg, constraint string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	path := domain.LinksPath(manifest.Root)
	prev, err := Read(path)
	if err != nil {
		return false, err
	}

	declared := make(map[string]bool, len(manifest.Requirements))
	for _, req := range manifest.Requirements {
		declared[req.Name] = true
	}

	next := Links{Platform: make(map[string]Link, len(prev.Platform)+1)}
	for name, link := range prev.Platform {
		if declared[name] {
			next.Platform[name] = link
		}
	}
	next.Platform[requirement] = Link{Package: pkg, Constraint: constraint}
	next.Require = rebuild(manifest.Require, next.Platform)

	if maps.Equal(prev.Require, next.Require) && maps.Equal(prev.Platform, next.Platform) {
		return false, nil
	}

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrLinksWriteFailed.Error())
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.Wrap(err, domain.ErrLinksWriteFailed.Error())
	}
	//nolint:gosec // Path is constructed from the project root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrLinksWriteFailed.Error()), "path", path)
	}
	return true, nil
}

// rebuild returns the root requirements plus one entry per platform link.
// A link overrides a root requirement on the same package.
func rebuild(root map[string]string, platform map[string]Link) map[string]string {
	require := make(map[string]string, len(root)+len(platform))
	maps.Copy(require, root)
	for _, link := range platform {
		require[link.Package] = link.Constraint
	}
	return require
}

// Read loads a links file. A missing file yields an empty set.
func Read(path string) (Links, error) {
	links := Links{}

	//nolint:gosec // Path is constructed from the project root
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return links, zerr.With(zerr.Wrap(err, domain.ErrLinksReadFailed.Error()), "path", path)
	}
	if err == nil {
		if err := json.Unmarshal(data, &links); err != nil {
			return links, zerr.With(zerr.Wrap(err, domain.ErrLinksReadFailed.Error()), "path", path)
		}
	}

	if links.Require == nil {
		links.Require = make(map[string]string)
	}
	if links.Platform == nil {
		links.Platform = make(map[string]Link)
	}
	return links, nil
}
