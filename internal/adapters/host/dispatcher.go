// Package host provides the package-manager lifecycle event dispatcher.
package host

import (
	"context"
	"sync"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher implements ports.Hooks.
// Each dispatched event runs inside a "lifecycle.<event>" span.
type Dispatcher struct {
	tracer ports.Tracer

	mu       sync.RWMutex
	handlers map[domain.Event][]ports.Handler
}

// NewDispatcher creates a Dispatcher with no registered handlers.
func NewDispatcher(tracer ports.Tracer) *Dispatcher {
	return &Dispatcher{
		tracer:   tracer,
		handlers: make(map[domain.Event][]ports.Handler),
	}
}

// Register adds h to the handlers of event.
func (d *Dispatcher) Register(event domain.Event, h ports.Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = append(d.handlers[event], h)
}

// Dispatch runs the handlers of event in registration order.
// The first failing handler stops the dispatch and its error is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, event domain.Event) error {
	d.mu.RLock()
	handlers := append([]ports.Handler(nil), d.handlers[event]...)
	d.mu.RUnlock()

	ctx, span := d.tracer.Start(ctx, "lifecycle."+event.String(), ports.WithAttribute("handlers", len(handlers)))
	defer span.End()

	for _, h := range handlers {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return err
		}
		if err := h(ctx); err != nil {
			span.RecordError(err)
			return zerr.With(err, "event", event.String())
		}
	}
	return nil
}
