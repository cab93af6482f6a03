// Package installer installs package metadata into the project's vendor directory.
package installer

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.Installer.
// Installed packages are tracked in an index file mapping name to version.
type Installer struct {
	logger ports.Logger
}

// New creates a new Installer.
func New(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// IsInstalled reports whether this exact name and version is installed.
func (i *Installer) IsInstalled(m *domain.Manifest, pkg *domain.Package) (bool, error) {
	installed, err := readIndex(indexPath(m))
	if err != nil {
		return false, err
	}
	version, ok := installed[pkg.Name]
	return ok && version == pkg.Version, nil
}

// Install writes the package metadata into its vendor directory and records it
// in the installed index.
func (i *Installer) Install(ctx context.Context, m *domain.Manifest, pkg *domain.Package) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := InstallPath(m, pkg)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "package", pkg.Name)
	}

	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "package", pkg.Name)
	}
	//nolint:gosec // Path is constructed from the vendor directory and package name
	if err := os.WriteFile(filepath.Join(dir, domain.PackageMetadataFileName), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "package", pkg.Name)
	}

	path := indexPath(m)
	installed, err := readIndex(path)
	if err != nil {
		return err
	}
	installed[pkg.Name] = pkg.Version

	data, err = json.MarshalIndent(installed, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	//nolint:gosec // Path is constructed from the vendor directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "index", path)
	}

	i.logger.Debug("installed " + pkg.Name + " " + pkg.Version + " into " + dir)
	return nil
}

// InstallPath returns the directory a package is installed into.
// TargetDir, when set, replaces the package name below the vendor directory.
func InstallPath(m *domain.Manifest, pkg *domain.Package) string {
	rel := pkg.Name
	if pkg.TargetDir != "" {
		rel = pkg.TargetDir
	}
	return filepath.Join(m.VendorPath(), filepath.FromSlash(rel))
}

func indexPath(m *domain.Manifest) string {
	return filepath.Join(m.VendorPath(), domain.InstalledIndexFileName)
}

func readIndex(path string) (map[string]string, error) {
	//nolint:gosec // Path is constructed from the vendor directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstalledIndexReadFailed.Error()), "index", path)
	}

	installed := make(map[string]string)
	if err := json.Unmarshal(data, &installed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstalledIndexReadFailed.Error()), "index", path)
	}
	return installed, nil
}
