package strategy_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports/mocks"
	"go.trai.ch/platdep/internal/engine/strategy"
	"go.uber.org/mock/gomock"
)

func manifest() *domain.Manifest {
	return &domain.Manifest{Root: "/project", VendorDir: "vendor", Strategy: "link"}
}

var genericMatch = domain.Match{Package: "vendor/db-generic", Constraint: "^1.0", Index: 2}

func TestSet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	set := strategy.NewSet(
		strategy.NewLink(mocks.NewMockRequirementLinker(ctrl)),
		strategy.NewDownload(mocks.NewMockPackageRepository(ctrl), mocks.NewMockDownloader(ctrl), mocks.NewMockLogger(ctrl)),
		strategy.NewClone(mocks.NewMockPackageRepository(ctrl), mocks.NewMockInstaller(ctrl), mocks.NewMockLogger(ctrl)),
	)

	assert.Equal(t, []string{"clone", "download", "link"}, set.Names())

	for _, name := range set.Names() {
		st, err := set.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, st.Name())
	}

	_, err := set.Get("symlink")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownStrategy.Error())
}

func TestLink(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	linker := mocks.NewMockRequirementLinker(ctrl)
	m := manifest()

	gomock.InOrder(
		linker.EXPECT().Link(m, "db-driver", "vendor/db-generic", "^1.0").Return(true, nil),
		linker.EXPECT().Link(m, "db-driver", "vendor/db-generic", "^1.0").Return(false, nil),
	)

	s := strategy.NewLink(linker)
	assert.True(t, s.Accept(m, domain.Variant{Package: "vendor/anything"}))

	outcome, err := s.Apply(context.Background(), m, "db-driver", genericMatch)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeLinked, outcome)

	outcome, err = s.Apply(context.Background(), m, "db-driver", genericMatch)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, outcome)
}

func TestLink_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	linker := mocks.NewMockRequirementLinker(ctrl)
	linker.EXPECT().Link(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("disk full"))

	_, err := strategy.NewLink(linker).Apply(context.Background(), manifest(), "db-driver", genericMatch)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrApplyFailed.Error())
	assert.ErrorContains(t, err, "disk full")
}

func TestDownload_Accept(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPackageRepository(ctrl)
	log := mocks.NewMockLogger(ctrl)
	m := manifest()

	repo.EXPECT().Find(m, "vendor/known", "^1.0").Return(&domain.Package{Name: "vendor/known", Version: "1.2.0"}, nil)
	repo.EXPECT().Find(m, "vendor/unknown", "^1.0").Return(nil, nil)
	repo.EXPECT().Find(m, "vendor/broken", "^1.0").Return(nil, errors.New("corrupt index"))
	log.EXPECT().Debug("no package vendor/unknown matching ^1.0, trying next variant")
	log.EXPECT().Warn(gomock.Any())

	s := strategy.NewDownload(repo, mocks.NewMockDownloader(ctrl), log)
	assert.True(t, s.Accept(m, domain.Variant{Package: "vendor/known", Constraint: "^1.0"}))
	assert.False(t, s.Accept(m, domain.Variant{Package: "vendor/unknown", Constraint: "^1.0"}))
	assert.False(t, s.Accept(m, domain.Variant{Package: "vendor/broken", Constraint: "^1.0"}))
}

func TestDownload_Apply(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPackageRepository(ctrl)
	dl := mocks.NewMockDownloader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	m := manifest()
	pkg := &domain.Package{Name: "vendor/db-generic", Version: "1.4.2"}

	repo.EXPECT().Find(m, "vendor/db-generic", "^1.0").Return(pkg, nil)
	dl.EXPECT().Download(gomock.Any(), pkg, filepath.Join("/project", "vendor", "db-driver")).Return("/project/vendor/db-driver/db.zip", nil)
	log.EXPECT().Debug(gomock.Any())

	outcome, err := strategy.NewDownload(repo, dl, log).Apply(context.Background(), m, "db-driver", genericMatch)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDownloaded, outcome)
}

func TestDownload_ApplyErrors(t *testing.T) {
	t.Parallel()

	t.Run("package vanished", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockPackageRepository(ctrl)
		repo.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := strategy.NewDownload(repo, mocks.NewMockDownloader(ctrl), mocks.NewMockLogger(ctrl)).
			Apply(context.Background(), manifest(), "db-driver", genericMatch)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownSourcePackage.Error())
	})

	t.Run("download fails", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockPackageRepository(ctrl)
		dl := mocks.NewMockDownloader(ctrl)
		repo.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Package{Name: "vendor/db-generic"}, nil)
		dl.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).Return("", domain.ErrChecksumMismatch)

		_, err := strategy.NewDownload(repo, dl, mocks.NewMockLogger(ctrl)).
			Apply(context.Background(), manifest(), "db-driver", genericMatch)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrApplyFailed.Error())
		assert.ErrorContains(t, err, domain.ErrChecksumMismatch.Error())
	})
}

func TestClone_Apply(t *testing.T) {
	t.Parallel()

	src := &domain.Package{
		ID:         "17",
		Name:       "vendor/db-generic",
		Version:    "1.4.2",
		Repository: "packages.json",
		Require:    map[string]string{"php": ">=8.1"},
	}

	tests := []struct {
		name      string
		installed bool
		want      domain.Outcome
	}{
		{"fresh install", false, domain.OutcomeInstalled},
		{"already installed", true, domain.OutcomeSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := mocks.NewMockPackageRepository(ctrl)
			inst := mocks.NewMockInstaller(ctrl)
			log := mocks.NewMockLogger(ctrl)
			log.EXPECT().Debug(gomock.Any()).AnyTimes()
			m := manifest()

			isClone := gomock.Cond(func(x any) bool {
				p, ok := x.(*domain.Package)
				return ok && p.Name == "db-driver" && p.Version == "1.4.2" && p.ID == "" && p.Require["php"] == ">=8.1"
			})

			gomock.InOrder(
				repo.EXPECT().Find(m, "vendor/db-generic", "^1.0").Return(src, nil),
				repo.EXPECT().Add(m, isClone).Return(nil),
				inst.EXPECT().IsInstalled(m, isClone).Return(tt.installed, nil),
			)
			if !tt.installed {
				inst.EXPECT().Install(gomock.Any(), m, isClone).Return(nil)
			}

			outcome, err := strategy.NewClone(repo, inst, log).Apply(context.Background(), m, "db-driver", genericMatch)
			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, "vendor/db-generic", src.Name, "source package must not be modified")
		})
	}
}

func TestClone_ApplyErrors(t *testing.T) {
	t.Parallel()

	src := &domain.Package{Name: "vendor/db-generic", Version: "1.4.2"}

	t.Run("unknown source", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockPackageRepository(ctrl)
		repo.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := strategy.NewClone(repo, mocks.NewMockInstaller(ctrl), mocks.NewMockLogger(ctrl)).
			Apply(context.Background(), manifest(), "db-driver", genericMatch)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownSourcePackage.Error())
	})

	t.Run("add fails", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockPackageRepository(ctrl)
		repo.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return(src, nil)
		repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(domain.ErrRepositoryWriteFailed)

		_, err := strategy.NewClone(repo, mocks.NewMockInstaller(ctrl), mocks.NewMockLogger(ctrl)).
			Apply(context.Background(), manifest(), "db-driver", genericMatch)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrRepositoryWriteFailed.Error())
	})

	t.Run("install fails", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := mocks.NewMockPackageRepository(ctrl)
		inst := mocks.NewMockInstaller(ctrl)
		repo.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any()).Return(src, nil)
		repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
		inst.EXPECT().IsInstalled(gomock.Any(), gomock.Any()).Return(false, nil)
		inst.EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ErrInstallFailed)

		_, err := strategy.NewClone(repo, inst, mocks.NewMockLogger(ctrl)).
			Apply(context.Background(), manifest(), "db-driver", genericMatch)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInstallFailed.Error())
	})
}
