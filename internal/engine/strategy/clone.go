package strategy

import (
	"context"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Clone copies the matched package under the requirement name, registers the
// copy in the local repository and installs it.
type Clone struct {
	repo      ports.PackageRepository
	installer ports.Installer
	logger    ports.Logger
}

// NewClone creates the clone strategy.
func NewClone(repo ports.PackageRepository, installer ports.Installer, logger ports.Logger) *Clone {
	return &Clone{repo: repo, installer: installer, logger: logger}
}

// Name returns "clone".
func (s *Clone) Name() string { return CloneName }

// Accept reports whether a repository knows the variant's package.
func (s *Clone) Accept(m *domain.Manifest, v domain.Variant) bool {
	return known(s.repo, s.logger, m, v)
}

// Apply clones and installs the matched package. An identical clone that is
// already installed is reported as skipped.
func (s *Clone) Apply(ctx context.Context, m *domain.Manifest, requirement string, match domain.Match) (domain.Outcome, error) {
	src, err := find(s.repo, m, match)
	if err != nil {
		return "", zerr.With(err, "requirement", requirement)
	}

	clone := domain.ClonePackage(src, requirement)
	if err := s.repo.Add(m, clone); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrApplyFailed.Error()), "requirement", requirement)
	}

	installed, err := s.installer.IsInstalled(m, clone)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrApplyFailed.Error()), "requirement", requirement)
	}
	if installed {
		s.logger.Debug(requirement + " " + clone.Version + " is already installed")
		return domain.OutcomeSkipped, nil
	}

	if err := s.installer.Install(ctx, m, clone); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrApplyFailed.Error()), "requirement", requirement)
	}
	return domain.OutcomeInstalled, nil
}
