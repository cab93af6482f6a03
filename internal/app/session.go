package app

import (
	"context"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/engine/strategy"
)

// session carries the state of one install or update run through the
// lifecycle handlers.
type session struct {
	opts       Options
	manifest   *domain.Manifest
	platform   domain.Platform
	strategy   strategy.Strategy
	resolution domain.Resolution
	applied    []domain.AppliedRecord
}

type sessionKey struct{}

func withSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(ctx context.Context) (*session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*session)
	return s, ok
}

// changed reports whether any requirement was applied with an effect.
func (s *session) changed() bool {
	for _, record := range s.applied {
		if record.Outcome != domain.OutcomeSkipped {
			return true
		}
	}
	return false
}
