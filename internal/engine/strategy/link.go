package strategy

import (
	"context"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Link adds the matched package as a requirement of the root package and
// leaves installing it to the host's next solve.
type Link struct {
	linker ports.RequirementLinker
}

// NewLink creates the link strategy.
func NewLink(linker ports.RequirementLinker) *Link {
	return &Link{linker: linker}
}

// Name returns "link".
func (s *Link) Name() string { return LinkName }

// Accept accepts every variant; the host resolves the package later.
func (s *Link) Accept(_ *domain.Manifest, _ domain.Variant) bool { return true }

// Apply links the matched package with its constraint. An already current
// link is skipped.
func (s *Link) Apply(_ context.Context, m *domain.Manifest, requirement string, match domain.Match) (domain.Outcome, error) {
	changed, err := s.linker.Link(m, requirement, match.Package, match.Constraint)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrApplyFailed.Error()), "requirement", requirement)
	}
	if !changed {
		return domain.OutcomeSkipped, nil
	}
	return domain.OutcomeLinked, nil
}
