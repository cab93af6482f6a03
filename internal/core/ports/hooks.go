package ports

import (
	"context"

	"go.trai.ch/platdep/internal/core/domain"
)

// Handler is invoked when a lifecycle event is dispatched.
type Handler func(ctx context.Context) error

// Hooks binds handlers to package-manager lifecycle events.
//
//go:generate go run go.uber.org/mock/mockgen -source=hooks.go -destination=mocks/mock_hooks.go -package=mocks
type Hooks interface {
	// Register adds h to the handlers of event.
	Register(event domain.Event, h Handler)

	// Dispatch runs the handlers of event in registration order and stops at the first error.
	Dispatch(ctx context.Context, event domain.Event) error
}
