package strategy

import (
	"context"
	"path/filepath"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Download fetches the dist archive of the matched package into
// <vendor-dir>/<requirement>.
type Download struct {
	repo       ports.PackageRepository
	downloader ports.Downloader
	logger     ports.Logger
}

// NewDownload creates the download strategy.
func NewDownload(repo ports.PackageRepository, downloader ports.Downloader, logger ports.Logger) *Download {
	return &Download{repo: repo, downloader: downloader, logger: logger}
}

// Name returns "download".
func (s *Download) Name() string { return DownloadName }

// Accept reports whether a repository knows the variant's package.
func (s *Download) Accept(m *domain.Manifest, v domain.Variant) bool {
	return known(s.repo, s.logger, m, v)
}

// Apply downloads the matched package.
func (s *Download) Apply(ctx context.Context, m *domain.Manifest, requirement string, match domain.Match) (domain.Outcome, error) {
	pkg, err := find(s.repo, m, match)
	if err != nil {
		return "", zerr.With(err, "requirement", requirement)
	}

	path, err := s.downloader.Download(ctx, pkg, filepath.Join(m.VendorPath(), filepath.FromSlash(requirement)))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrApplyFailed.Error()), "requirement", requirement)
	}

	s.logger.Debug("downloaded " + pkg.Name + " " + pkg.Version + " to " + path)
	return domain.OutcomeDownloaded, nil
}
