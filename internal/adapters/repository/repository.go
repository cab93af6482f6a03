// Package repository finds packages in composer-style index files and keeps
// the project's writable local repository.
package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// LocalName is the repository name given to packages read from the local repository.
const LocalName = "local"

// index is the on-disk shape of a package index: name -> version -> package.
type index struct {
	Packages map[string]map[string]*domain.Package `json:"packages"`
}

// Repository implements ports.PackageRepository.
type Repository struct {
	logger ports.Logger
}

// New creates a new Repository.
func New(logger ports.Logger) *Repository {
	return &Repository{logger: logger}
}

// Find returns the highest version of name satisfying constraint across the
// manifest's index files and the local repository.
// Returns nil, nil if no version matches.
func (r *Repository) Find(m *domain.Manifest, name, constraint string) (*domain.Package, error) {
	candidates, err := r.candidates(m, name)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	return selectVersion(candidates, constraint)
}

// Add writes pkg to the local repository, replacing an existing entry for the
// same name and version.
func (r *Repository) Add(m *domain.Manifest, pkg *domain.Package) error {
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRepositoryWriteFailed.Error())
	}

	dir := domain.RepositoryPath(m.Root)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrRepositoryWriteFailed.Error())
	}

	filename := filepath.Join(dir, localFilename(pkg.Name, pkg.Version))
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRepositoryWriteFailed.Error()), "package", pkg.Name)
	}

	pkg.Repository = LocalName
	return nil
}

func (r *Repository) candidates(m *domain.Manifest, name string) ([]*domain.Package, error) {
	indexes := make([]*index, len(m.Repositories))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, repo := range m.Repositories {
		path := repo
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.Root, path)
		}
		g.Go(func() error {
			idx, err := readIndex(path)
			indexes[i] = idx
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []*domain.Package
	for i, repo := range m.Repositories {
		idx := indexes[i]
		if idx == nil {
			r.logger.Warn("package repository " + repo + " does not exist")
			continue
		}

		for version, pkg := range idx.Packages[name] {
			if pkg == nil {
				pkg = &domain.Package{}
			}
			pkg.Name = name
			if pkg.Version == "" {
				pkg.Version = version
			}
			pkg.Repository = repo
			out = append(out, pkg)
		}
	}

	local, err := readLocal(domain.RepositoryPath(m.Root), name)
	if err != nil {
		return nil, err
	}

	return append(out, local...), nil
}

// readIndex returns nil, nil if the index file does not exist.
func readIndex(path string) (*index, error) {
	//nolint:gosec // Index paths come from the project configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryReadFailed.Error()), "path", path)
	}

	var idx index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryParseFailed.Error()), "path", path)
	}
	return &idx, nil
}

func readLocal(dir, name string) ([]*domain.Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryReadFailed.Error()), "path", dir)
	}

	var out []*domain.Package
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}

		path := filepath.Join(dir, e.Name())
		//nolint:gosec // Path is constructed from the local repository directory
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryReadFailed.Error()), "path", path)
		}

		var pkg domain.Package
		if err := json.Unmarshal(data, &pkg); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositoryParseFailed.Error()), "path", path)
		}
		if pkg.Name != name {
			continue
		}
		pkg.Repository = LocalName
		out = append(out, &pkg)
	}
	return out, nil
}

// selectVersion picks the best candidate for constraint.
// "", "*" and "latest" select the highest semantic version; branch aliases
// ("dev-main") require an exact version match.
func selectVersion(candidates []*domain.Package, constraint string) (*domain.Package, error) {
	constraint = strings.TrimSpace(constraint)

	if strings.HasPrefix(constraint, "dev-") {
		for _, pkg := range candidates {
			if pkg.Version == constraint {
				return pkg, nil
			}
		}
		return nil, nil
	}

	var c *semver.Constraints
	switch constraint {
	case "", "*", "latest":
	default:
		if at := strings.LastIndex(constraint, "@"); at > 0 {
			constraint = constraint[:at]
		}
		parsed, err := semver.NewConstraint(constraint)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidVersionConstraint.Error()), "constraint", constraint)
		}
		c = parsed
	}

	type versioned struct {
		version *semver.Version
		pkg     *domain.Package
	}

	var matches []versioned
	for _, pkg := range candidates {
		v, err := semver.NewVersion(pkg.Version)
		if err != nil {
			continue
		}
		if c != nil && !c.Check(v) {
			continue
		}
		matches = append(matches, versioned{version: v, pkg: pkg})
	}
	if len(matches) == 0 {
		return nil, nil
	}

	best := slices.MaxFunc(matches, func(a, b versioned) int {
		return a.version.Compare(b.version)
	})
	return best.pkg, nil
}

func localFilename(name, version string) string {
	return strconv.FormatUint(xxhash.Sum64String(name+"@"+version), 16) + ".json"
}
