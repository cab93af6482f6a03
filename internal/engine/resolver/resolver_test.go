package resolver_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/engine/resolver"
)

var (
	linux64  = domain.Platform{OS: domain.OSLinux, Arch: domain.ArchX64}
	mac64    = domain.Platform{OS: domain.OSMacOSX, Arch: domain.ArchX64}
	windows3 = domain.Platform{OS: domain.OSWindows, Arch: domain.ArchI386}
	windows6 = domain.Platform{OS: domain.OSWindows, Arch: domain.ArchX64}
)

func dbDriver() []domain.Requirement {
	return []domain.Requirement{{
		Name: "db-driver",
		Variants: []domain.Variant{
			{OS: domain.OSWindows, Arch: domain.ArchX64, Package: "vendor/db-win64", Constraint: "^2.0"},
			{OS: domain.OSWindows, Package: "vendor/db-win32", Constraint: "^1.5"},
			{Package: "vendor/db-generic", Constraint: "^1.0"},
		},
	}}
}

func TestResolve_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		platform domain.Platform
		want     domain.Match
	}{
		{
			name:     "linux falls through to unconstrained variant",
			platform: linux64,
			want:     domain.Match{Package: "vendor/db-generic", Constraint: "^1.0", Index: 2},
		},
		{
			name:     "macosx falls through to unconstrained variant",
			platform: mac64,
			want:     domain.Match{Package: "vendor/db-generic", Constraint: "^1.0", Index: 2},
		},
		{
			name:     "windows x64 takes the most specific first variant",
			platform: windows6,
			want:     domain.Match{Package: "vendor/db-win64", Constraint: "^2.0", Index: 0},
		},
		{
			name:     "windows i386 skips the arch-constrained variant",
			platform: windows3,
			want:     domain.Match{Package: "vendor/db-win32", Constraint: "^1.5", Index: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := resolver.Resolve(dbDriver(), tt.platform)

			assert.Empty(t, res.Unresolved)
			require.Contains(t, res.Resolved, "db-driver")
			assert.Equal(t, tt.want, res.Resolved["db-driver"])
		})
	}
}

func TestResolve_NoFallbackIsUnresolved(t *testing.T) {
	t.Parallel()

	reqs := dbDriver()
	reqs[0].Variants = reqs[0].Variants[:2]

	res := resolver.Resolve(reqs, mac64)

	assert.Equal(t, []string{"db-driver"}, res.Unresolved)
	assert.Empty(t, res.Resolved)
}

func TestResolve_EmptyVariantListIsUnresolved(t *testing.T) {
	t.Parallel()

	for _, p := range []domain.Platform{linux64, mac64, windows3, {OS: domain.OSUndefined, Arch: domain.ArchUndefined}} {
		res := resolver.Resolve([]domain.Requirement{{Name: "empty"}}, p)
		assert.Equal(t, []string{"empty"}, res.Unresolved, p.String())
		assert.NotContains(t, res.Resolved, "empty", p.String())
	}
}

func TestResolve_UnconstrainedAlwaysMatches(t *testing.T) {
	t.Parallel()

	reqs := []domain.Requirement{{
		Name:     "any",
		Variants: []domain.Variant{{Package: "vendor/any", Constraint: "*"}},
	}}

	platforms := []domain.Platform{
		linux64, mac64, windows3, windows6,
		{OS: domain.OSFreeBSD, Arch: domain.ArchI386},
		{OS: domain.OSUndefined, Arch: domain.ArchUndefined},
	}
	for _, p := range platforms {
		res := resolver.Resolve(reqs, p)
		assert.Empty(t, res.Unresolved, p.String())
		assert.Equal(t, "vendor/any", res.Resolved["any"].Package, p.String())
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	t.Parallel()

	reqs := []domain.Requirement{{
		Name: "tool",
		Variants: []domain.Variant{
			{Package: "vendor/generic", Constraint: "1.0"},
			{OS: domain.OSLinux, Arch: domain.ArchX64, Package: "vendor/linux64", Constraint: "2.0"},
		},
	}}

	res := resolver.Resolve(reqs, linux64)

	assert.Equal(t, "vendor/generic", res.Resolved["tool"].Package)
	assert.Equal(t, "1.0", res.Resolved["tool"].Constraint)
}

func TestResolve_UnresolvedKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	names := []string{"zeta", "alpha", "mid", "beta", "omega"}
	reqs := make([]domain.Requirement, 0, len(names)+1)
	for _, n := range names {
		reqs = append(reqs, domain.Requirement{
			Name:     n,
			Variants: []domain.Variant{{OS: domain.OSFreeBSD, Package: "vendor/" + n, Constraint: "*"}},
		})
	}
	reqs = append(reqs, domain.Requirement{
		Name:     "ok",
		Variants: []domain.Variant{{OS: domain.OSLinux, Package: "vendor/ok", Constraint: "*"}},
	})

	res := resolver.Resolve(reqs, linux64)

	assert.Equal(t, names, res.Unresolved)
	assert.Len(t, res.Resolved, 1)
	assert.Contains(t, res.Resolved, "ok")
}

func TestResolve_ArchOnlyConstraint(t *testing.T) {
	t.Parallel()

	reqs := []domain.Requirement{{
		Name: "bin",
		Variants: []domain.Variant{
			{Arch: domain.ArchI386, Package: "vendor/bin32", Constraint: "*"},
			{Arch: domain.ArchX64, Package: "vendor/bin64", Constraint: "*"},
		},
	}}

	assert.Equal(t, "vendor/bin32", resolver.Resolve(reqs, windows3).Resolved["bin"].Package)
	assert.Equal(t, "vendor/bin64", resolver.Resolve(reqs, windows6).Resolved["bin"].Package)
	assert.Equal(t, []string{"bin"}, resolver.Resolve(reqs, domain.Platform{OS: domain.OSLinux, Arch: domain.ArchUndefined}).Unresolved)
}

func TestResolve_IsPureAndDeterministic(t *testing.T) {
	t.Parallel()

	reqs := append(dbDriver(), domain.Requirement{Name: "none"})
	snapshot := make([]domain.Requirement, len(reqs))
	for i, r := range reqs {
		snapshot[i] = domain.Requirement{Name: r.Name, Variants: append([]domain.Variant(nil), r.Variants...)}
	}

	first := resolver.Resolve(reqs, windows3)
	for i := range 10 {
		again := resolver.Resolve(reqs, windows3)
		assert.Equal(t, first, again, fmt.Sprintf("run %d", i))
	}

	assert.Equal(t, snapshot, reqs)
}

func TestResolveFunc_RejectedVariantFallsThrough(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"vendor/db-generic": true}
	accept := func(v domain.Variant) bool { return known[v.Package] }

	res := resolver.ResolveFunc(dbDriver(), windows6, accept)

	assert.Empty(t, res.Unresolved)
	assert.Equal(t, domain.Match{Package: "vendor/db-generic", Constraint: "^1.0", Index: 2}, res.Resolved["db-driver"])
}

func TestResolveFunc_AllRejectedIsUnresolved(t *testing.T) {
	t.Parallel()

	res := resolver.ResolveFunc(dbDriver(), linux64, func(domain.Variant) bool { return false })

	assert.Equal(t, []string{"db-driver"}, res.Unresolved)
	assert.Empty(t, res.Resolved)
}

func TestResolveFunc_AcceptOnlySeesPlatformMatches(t *testing.T) {
	t.Parallel()

	var seen []string
	accept := func(v domain.Variant) bool {
		seen = append(seen, v.Package)
		return false
	}

	resolver.ResolveFunc(dbDriver(), linux64, accept)

	assert.Equal(t, []string{"vendor/db-generic"}, seen)
}

func TestResolve_NilRequirements(t *testing.T) {
	t.Parallel()

	res := resolver.Resolve(nil, linux64)
	assert.NotNil(t, res.Resolved)
	assert.NotNil(t, res.Unresolved)
	assert.Empty(t, res.Resolved)
	assert.Empty(t, res.Unresolved)
}
