package ports

import (
	"context"

	"go.trai.ch/platdep/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks

// PackageRepository looks up packages and accepts new ones into the project's local repository.
type PackageRepository interface {
	// Find returns the highest version of name satisfying constraint.
	// Returns nil, nil if no such package is known.
	Find(manifest *domain.Manifest, name, constraint string) (*domain.Package, error)

	// Add registers pkg in the local repository of the project.
	Add(manifest *domain.Manifest, pkg *domain.Package) error
}

// Installer queries and changes the installed state of packages.
type Installer interface {
	// IsInstalled reports whether this exact package version is installed.
	IsInstalled(manifest *domain.Manifest, pkg *domain.Package) (bool, error)

	// Install executes the install operation for pkg.
	Install(ctx context.Context, manifest *domain.Manifest, pkg *domain.Package) error
}

// Downloader fetches package archives.
type Downloader interface {
	// Download fetches the dist archive of pkg into dir and returns the written file path.
	Download(ctx context.Context, pkg *domain.Package, dir string) (string, error)
}

// RequirementLinker maintains the links from platform-specific requirements
// to the packages added to the project's root package.
type RequirementLinker interface {
	// Link points requirement at pkg with constraint, replacing the package it
	// linked before, and persists the rebuilt root requirement set.
	// It reports whether the persisted links changed.
	Link(manifest *domain.Manifest, requirement, pkg, constraint string) (bool, error)
}
