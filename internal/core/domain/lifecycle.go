package domain

import "time"

// Event is a package-manager lifecycle point handlers can be registered for.
type Event int

const (
	// PreInstall runs before the host installs the project's dependencies.
	PreInstall Event = iota
	// PostInstall runs after the host installed the project's dependencies.
	PostInstall
	// PreUpdate runs before the host updates the project's dependencies.
	PreUpdate
	// PostUpdate runs after the host updated the project's dependencies.
	PostUpdate
)

// String returns the hook name of the event.
func (e Event) String() string {
	switch e {
	case PreInstall:
		return "pre-install"
	case PostInstall:
		return "post-install"
	case PreUpdate:
		return "pre-update"
	case PostUpdate:
		return "post-update"
	default:
		return "unknown"
	}
}

// Outcome describes what applying a match did.
type Outcome string

const (
	// OutcomeLinked means a requirement link was added to the root package.
	OutcomeLinked Outcome = "linked"
	// OutcomeDownloaded means the package archive was fetched.
	OutcomeDownloaded Outcome = "downloaded"
	// OutcomeInstalled means a cloned package was registered and installed.
	OutcomeInstalled Outcome = "installed"
	// OutcomeSkipped means nothing had to be done.
	OutcomeSkipped Outcome = "skipped"
)

// AppliedRecord remembers how a requirement was last applied.
type AppliedRecord struct {
	Requirement string    `json:"requirement"`
	Package     string    `json:"package"`
	Constraint  string    `json:"constraint"`
	Strategy    string    `json:"strategy"`
	Platform    Platform  `json:"platform"`
	Outcome     Outcome   `json:"outcome"`
	AppliedAt   time.Time `json:"applied_at"`
}

// Same reports whether r records the same decision as other, ignoring
// the outcome and timestamp.
func (r AppliedRecord) Same(other AppliedRecord) bool {
	return r.Requirement == other.Requirement &&
		r.Package == other.Package &&
		r.Constraint == other.Constraint &&
		r.Strategy == other.Strategy &&
		r.Platform == other.Platform
}
