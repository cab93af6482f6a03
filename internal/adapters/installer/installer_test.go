package installer_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/platdep/internal/adapters/installer"
	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newInstaller(t *testing.T) (*installer.Installer, *domain.Manifest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	return installer.New(log), &domain.Manifest{Root: t.TempDir(), VendorDir: domain.DefaultVendorDir}
}

func TestInstaller_Install(t *testing.T) {
	t.Parallel()

	inst, m := newInstaller(t)
	pkg := &domain.Package{Name: "db-driver", Version: "1.4.2", Description: "cloned"}

	installed, err := inst.IsInstalled(m, pkg)
	require.NoError(t, err)
	assert.False(t, installed)

	require.NoError(t, inst.Install(context.Background(), m, pkg))

	installed, err = inst.IsInstalled(m, pkg)
	require.NoError(t, err)
	assert.True(t, installed)

	data, err := os.ReadFile(filepath.Join(m.Root, "vendor", "db-driver", domain.PackageMetadataFileName))
	require.NoError(t, err)

	var written domain.Package
	require.NoError(t, json.Unmarshal(data, &written))
	assert.Equal(t, "db-driver", written.Name)
	assert.Equal(t, "cloned", written.Description)

	data, err = os.ReadFile(filepath.Join(m.Root, "vendor", domain.InstalledIndexFileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"db-driver": "1.4.2"}`, string(data))
}

func TestInstaller_IsInstalledComparesVersion(t *testing.T) {
	t.Parallel()

	inst, m := newInstaller(t)
	require.NoError(t, inst.Install(context.Background(), m, &domain.Package{Name: "tool", Version: "1.0.0"}))

	installed, err := inst.IsInstalled(m, &domain.Package{Name: "tool", Version: "1.1.0"})
	require.NoError(t, err)
	assert.False(t, installed)

	require.NoError(t, inst.Install(context.Background(), m, &domain.Package{Name: "tool", Version: "1.1.0"}))
	require.NoError(t, inst.Install(context.Background(), m, &domain.Package{Name: "other", Version: "2.0.0"}))

	data, err := os.ReadFile(filepath.Join(m.Root, "vendor", domain.InstalledIndexFileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tool": "1.1.0", "other": "2.0.0"}`, string(data))
}

func TestInstaller_TargetDir(t *testing.T) {
	t.Parallel()

	inst, m := newInstaller(t)
	pkg := &domain.Package{Name: "vendor/tool", Version: "1.0.0", TargetDir: "custom/tool"}

	require.NoError(t, inst.Install(context.Background(), m, pkg))
	assert.FileExists(t, filepath.Join(m.Root, "vendor", "custom", "tool", domain.PackageMetadataFileName))
	assert.Equal(t, filepath.Join(m.Root, "vendor", "custom", "tool"), installer.InstallPath(m, pkg))
}

func TestInstaller_CanceledContext(t *testing.T) {
	t.Parallel()

	inst, m := newInstaller(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := inst.Install(ctx, m, &domain.Package{Name: "tool", Version: "1.0.0"})
	require.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, filepath.Join(m.Root, "vendor"))
}

func TestInstaller_CorruptIndex(t *testing.T) {
	t.Parallel()

	inst, m := newInstaller(t)
	vendor := filepath.Join(m.Root, "vendor")
	require.NoError(t, os.MkdirAll(vendor, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(vendor, domain.InstalledIndexFileName), []byte("["), domain.PrivateFilePerm))

	_, err := inst.IsInstalled(m, &domain.Package{Name: "tool", Version: "1.0.0"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInstalledIndexReadFailed.Error())
}
