package reporter_test

import (
	"bytes"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/platdep/internal/adapters/reporter"
	"go.trai.ch/platdep/internal/core/domain"
)

func newTestReporter(t *testing.T) (*reporter.Reporter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return reporter.New(buf), buf
}

func sampleResolution() (domain.Platform, domain.Resolution) {
	return domain.Platform{OS: domain.OSWindows, Arch: domain.ArchI386}, domain.Resolution{
		Resolved: map[string]domain.Match{
			"db-driver": {Package: "vendor/db-win32", Constraint: "^1.5", Index: 1},
			"cache":     {Package: "vendor/cache-generic", Constraint: "*", Index: 0},
		},
		Unresolved: []string{"gpu-driver", "audio"},
	}
}

func TestReporter_Unresolved(t *testing.T) {
	r, buf := newTestReporter(t)

	r.Unresolved([]string{"gpu-driver", "audio"})

	g := goldie.New(t)
	g.Assert(t, "unresolved", buf.Bytes())
}

func TestReporter_UnresolvedEmptyWritesNothing(t *testing.T) {
	r, buf := newTestReporter(t)

	r.Unresolved(nil)
	r.Unresolved([]string{})

	assert.Empty(t, buf.String())
}

func TestReporter_Applied(t *testing.T) {
	r, buf := newTestReporter(t)

	r.Installing()
	r.Applied("db-driver", domain.Match{Package: "vendor/db-generic", Constraint: "^1.0", Index: 2}, domain.OutcomeLinked)
	r.Applied("cache", domain.Match{Package: "vendor/cache", Constraint: "*"}, domain.OutcomeSkipped)

	g := goldie.New(t)
	g.Assert(t, "applied", buf.Bytes())
}

func TestReporter_NothingToDo(t *testing.T) {
	r, buf := newTestReporter(t)

	r.NothingToDo()

	assert.Equal(t, "Nothing to install or update\n", buf.String())
}

func TestReporter_SetOutput(t *testing.T) {
	r, first := newTestReporter(t)

	second := &bytes.Buffer{}
	r.SetOutput(second)
	r.NothingToDo()

	assert.Empty(t, first.String())
	assert.Equal(t, "Nothing to install or update\n", second.String())
}

func TestReporter_ResolutionText(t *testing.T) {
	r, _ := newTestReporter(t)
	platform, res := sampleResolution()

	var out bytes.Buffer
	require.NoError(t, r.Resolution(&out, platform, res, reporter.FormatText))

	g := goldie.New(t)
	g.Assert(t, "resolution_text", out.Bytes())
}

func TestReporter_ResolutionTextEmpty(t *testing.T) {
	r, _ := newTestReporter(t)

	var out bytes.Buffer
	platform := domain.Platform{OS: domain.OSLinux, Arch: domain.ArchX64}
	require.NoError(t, r.Resolution(&out, platform, domain.Resolution{}, ""))

	assert.Equal(t, "Platform: linux/x64\n\nNo platform-specific requirements\n", out.String())
}

func TestReporter_ResolutionJSON(t *testing.T) {
	r, _ := newTestReporter(t)
	platform, res := sampleResolution()

	var out bytes.Buffer
	require.NoError(t, r.Resolution(&out, platform, res, reporter.FormatJSON))

	g := goldie.New(t)
	g.Assert(t, "resolution_json", out.Bytes())
}

func TestReporter_ResolutionYAML(t *testing.T) {
	r, _ := newTestReporter(t)
	platform, res := sampleResolution()

	var out bytes.Buffer
	require.NoError(t, r.Resolution(&out, platform, res, reporter.FormatYAML))

	var decoded struct {
		Platform   domain.Platform         `yaml:"platform"`
		Resolved   map[string]domain.Match `yaml:"resolved"`
		Unresolved []string                `yaml:"unresolved"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, platform, decoded.Platform)
	assert.Equal(t, res.Resolved, decoded.Resolved)
	assert.Equal(t, res.Unresolved, decoded.Unresolved)
	assert.Contains(t, out.String(), "architecture: i386")
}

func TestReporter_ResolutionUnknownFormat(t *testing.T) {
	r, _ := newTestReporter(t)
	platform, res := sampleResolution()

	err := r.Resolution(&bytes.Buffer{}, platform, res, "xml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownFormat.Error())
}
