package ports

import "go.trai.ch/platdep/internal/core/domain"

// PlatformDetector reports the platform the process is running on.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PlatformDetector interface {
	// Detect returns the current platform. It never fails; unknown values are undefined.
	Detect() domain.Platform
}
