package strategy

import (
	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// known reports whether the variant's package exists. Lookup errors reject
// the variant so resolution can fall through to the next one.
func known(repo ports.PackageRepository, logger ports.Logger, m *domain.Manifest, v domain.Variant) bool {
	pkg, err := repo.Find(m, v.Package, v.Constraint)
	if err != nil {
		logger.Warn(zerr.Wrap(err, "skipping variant "+v.Package).Error())
		return false
	}
	if pkg == nil {
		logger.Debug("no package " + v.Package + " matching " + v.Constraint + ", trying next variant")
		return false
	}
	return true
}

func find(repo ports.PackageRepository, m *domain.Manifest, match domain.Match) (*domain.Package, error) {
	pkg, err := repo.Find(m, match.Package, match.Constraint)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrApplyFailed.Error())
	}
	if pkg == nil {
		notFound := zerr.With(domain.ErrUnknownSourcePackage, "package", match.Package)
		return nil, zerr.With(notFound, "constraint", match.Constraint)
	}
	return pkg, nil
}
