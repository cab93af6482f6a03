package ports

import (
	"io"

	"go.trai.ch/platdep/internal/core/domain"
)

// Reporter writes the human-readable status lines of a run.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Unresolved reports the requirements that had no variant for the current platform.
	Unresolved(names []string)

	// Installing announces that platform-specific dependencies are being applied.
	Installing()

	// Applied reports the outcome for one requirement.
	Applied(requirement string, match domain.Match, outcome domain.Outcome)

	// NothingToDo reports that nothing new was installed or updated.
	NothingToDo()

	// Resolution writes a full resolution in the given format ("text", "json" or "yaml").
	Resolution(w io.Writer, platform domain.Platform, res domain.Resolution, format string) error
}
