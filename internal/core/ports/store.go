package ports

import "go.trai.ch/platdep/internal/core/domain"

// StateStore defines the interface for remembering how requirements were applied.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get retrieves the record of requirement as last applied on platform in
	// the project at root. Returns nil, nil if not found.
	Get(root string, platform domain.Platform, requirement string) (*domain.AppliedRecord, error)

	// Put stores the applied record under its requirement and platform.
	Put(root string, record domain.AppliedRecord) error

	// Prune drops the records of platform whose requirement is not in keep and
	// returns the dropped requirement names in sorted order.
	Prune(root string, platform domain.Platform, keep []string) ([]string, error)
}
