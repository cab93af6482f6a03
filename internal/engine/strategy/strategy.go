// Package strategy applies resolved platform-specific variants.
//
// A strategy first decides whether it can use a platform-matching variant at
// all (Accept), which lets resolution fall through to the next variant, and
// then performs the side effect for the winning match (Apply).
package strategy

import (
	"context"
	"slices"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Names of the built-in strategies.
const (
	LinkName     = "link"
	DownloadName = "download"
	CloneName    = "clone"
)

// Strategy applies a resolved match.
type Strategy interface {
	// Name returns the configuration name of the strategy.
	Name() string

	// Accept reports whether v can be applied by this strategy.
	Accept(m *domain.Manifest, v domain.Variant) bool

	// Apply performs the strategy for the match chosen for requirement.
	Apply(ctx context.Context, m *domain.Manifest, requirement string, match domain.Match) (domain.Outcome, error)
}

// Set holds strategies by name.
type Set struct {
	strategies map[string]Strategy
}

// NewSet creates a Set. Later strategies replace earlier ones with the same name.
func NewSet(strategies ...Strategy) *Set {
	s := &Set{strategies: make(map[string]Strategy, len(strategies))}
	for _, st := range strategies {
		s.strategies[st.Name()] = st
	}
	return s
}

// Get returns the strategy registered under name.
func (s *Set) Get(name string) (Strategy, error) {
	st, ok := s.strategies[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownStrategy, "strategy", name)
	}
	return st, nil
}

// Names returns the registered strategy names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
