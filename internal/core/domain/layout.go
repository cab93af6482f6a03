package domain

import "path/filepath"

const (
	// PlatdepDirName is the name of the internal project directory.
	PlatdepDirName = ".platdep"

	// StateDirName is the name of the applied-state directory.
	StateDirName = "state"

	// RepositoryDirName is the name of the writable local package repository.
	RepositoryDirName = "repository"

	// LinksFileName is the name of the persisted requirement links file.
	LinksFileName = "links.json"

	// InstalledIndexFileName is the name of the installed-packages index inside the vendor directory.
	InstalledIndexFileName = ".platdep-installed.json"

	// PackageMetadataFileName is the name of the metadata file written for each installed package.
	PackageMetadataFileName = "package.json"

	// ConfigFileName is the name of the native configuration file.
	ConfigFileName = "platdep.yaml"

	// ComposerFileName is the name of the composer manifest read as a fallback.
	ComposerFileName = "composer.json"

	// DefaultVendorDir is the vendor directory used when the configuration names none.
	DefaultVendorDir = "vendor"

	// DefaultStrategy is the strategy used when the configuration names none.
	DefaultStrategy = "link"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// StatePath returns the applied-state directory under root.
// It joins root, .platdep and state.
func StatePath(root string) string {
	return filepath.Join(root, PlatdepDirName, StateDirName)
}

// RepositoryPath returns the local package repository directory under root.
// It joins root, .platdep and repository.
func RepositoryPath(root string) string {
	return filepath.Join(root, PlatdepDirName, RepositoryDirName)
}

// LinksPath returns the requirement links file under root.
func LinksPath(root string) string {
	return filepath.Join(root, PlatdepDirName, LinksFileName)
}
