// Package resolver selects, per requirement, the first variant matching a platform.
package resolver

import "go.trai.ch/platdep/internal/core/domain"

// AcceptFunc decides whether a platform-matching variant can be used.
// Rejected variants are skipped as if they did not match.
type AcceptFunc func(domain.Variant) bool

// Resolve picks the first variant of each requirement that matches the platform.
//
// Requirements are processed in order and variants in declaration order; the
// first match wins regardless of how specific later variants are. Requirements
// without a match, including those with no variants, are listed in
// Unresolved in the order they were encountered. The inputs are not modified.
func Resolve(requirements []domain.Requirement, platform domain.Platform) domain.Resolution {
	return ResolveFunc(requirements, platform, nil)
}

// ResolveFunc is Resolve with an additional acceptance check applied to every
// platform-matching variant. A nil accept admits every variant.
func ResolveFunc(requirements []domain.Requirement, platform domain.Platform, accept AcceptFunc) domain.Resolution {
	res := domain.Resolution{
		Resolved:   make(map[string]domain.Match, len(requirements)),
		Unresolved: []string{},
	}

	for _, req := range requirements {
		match, ok := first(req.Variants, platform, accept)
		if !ok {
			res.Unresolved = append(res.Unresolved, req.Name)
			continue
		}
		res.Resolved[req.Name] = match
	}

	return res
}

func first(variants []domain.Variant, platform domain.Platform, accept AcceptFunc) (domain.Match, bool) {
	for i, v := range variants {
		if !v.Matches(platform) {
			continue
		}
		if accept != nil && !accept(v) {
			continue
		}
		return domain.Match{Package: v.Package, Constraint: v.Constraint, Index: i}, true
	}
	return domain.Match{}, false
}
