package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when neither platdep.yaml nor composer.json can be found.
	ErrConfigNotFound = zerr.New("could not find platdep.yaml or composer.json")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMalformedVariant is returned when a variant does not name exactly one package.
	ErrMalformedVariant = zerr.New("variant must declare exactly one package besides os and architecture")

	// ErrInvalidConstraint is returned when a variant's os or architecture value is unknown.
	ErrInvalidConstraint = zerr.New("invalid platform constraint")

	// ErrInvalidVersionConstraint is returned when a variant's version constraint cannot be parsed.
	ErrInvalidVersionConstraint = zerr.New("invalid version constraint")

	// ErrUnknownStrategy is returned when the configured apply strategy does not exist.
	ErrUnknownStrategy = zerr.New("unknown strategy, expected 'link', 'download' or 'clone'")

	// ErrInvalidPlatformOverride is returned when --os or --arch names an unknown value.
	ErrInvalidPlatformOverride = zerr.New("invalid platform override")

	// ErrUnresolvedRequirements is returned in strict mode when a requirement had no matching variant.
	ErrUnresolvedRequirements = zerr.New("unresolved platform-specific requirements")

	// ErrUnknownSourcePackage is returned when a matched package cannot be found in any repository.
	ErrUnknownSourcePackage = zerr.New("package not found in any repository")

	// ErrApplyFailed is returned when a strategy fails to apply a match.
	ErrApplyFailed = zerr.New("failed to apply platform-specific requirement")

	// ErrRepositoryReadFailed is returned when a package index cannot be read.
	ErrRepositoryReadFailed = zerr.New("failed to read package repository")

	// ErrRepositoryParseFailed is returned when a package index cannot be parsed.
	ErrRepositoryParseFailed = zerr.New("failed to parse package repository")

	// ErrRepositoryWriteFailed is returned when a package cannot be added to the local repository.
	ErrRepositoryWriteFailed = zerr.New("failed to write package to local repository")

	// ErrInstallFailed is returned when an install operation fails.
	ErrInstallFailed = zerr.New("failed to install package")

	// ErrInstalledIndexReadFailed is returned when the installed-packages index cannot be read.
	ErrInstalledIndexReadFailed = zerr.New("failed to read installed packages index")

	// ErrDownloadFailed is returned when a package archive cannot be fetched.
	ErrDownloadFailed = zerr.New("failed to download package")

	// ErrMissingDist is returned when a package has no dist URL to download from.
	ErrMissingDist = zerr.New("package has no dist url")

	// ErrChecksumMismatch is returned when a downloaded archive does not match its shasum.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrUnknownFormat is returned when a resolution is requested in an unsupported output format.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'text', 'json' or 'yaml'")

	// ErrLinksReadFailed is returned when the requirement links file cannot be read.
	ErrLinksReadFailed = zerr.New("failed to read requirement links")

	// ErrLinksWriteFailed is returned when the requirement links file cannot be written.
	ErrLinksWriteFailed = zerr.New("failed to write requirement links")

	// ErrStoreCreateFailed is returned when the state store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state store directory")

	// ErrStoreReadFailed is returned when a platform state file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read applied state")

	// ErrStoreUnmarshalFailed is returned when a platform state file cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal applied state")

	// ErrStoreMarshalFailed is returned when a platform state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal applied state")

	// ErrStoreWriteFailed is returned when a platform state file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write applied state")
)
