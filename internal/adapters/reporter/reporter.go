// Package reporter renders run status and resolutions for humans and tools.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/ui/output"
	"go.trai.ch/platdep/internal/ui/style"
	"go.trai.ch/zerr"
)

// Supported resolution formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Reporter implements ports.Reporter.
type Reporter struct {
	mu  sync.Mutex
	out *termenv.Output
}

// New creates a Reporter writing status lines to w. A nil w means stdout.
func New(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{out: output.New(w)}
}

// SetOutput changes where status lines are written.
func (r *Reporter) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	r.out = output.New(w)
}

// Unresolved reports requirements without a variant for the current platform.
// Nothing is written for an empty list.
func (r *Reporter) Unresolved(names []string) {
	if len(names) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.line(style.Red, "Your requirements could not be resolved for current OS and/or processor architecture.")
	r.line("", "")
	r.line("", "  Unresolved platform-specific packages:")
	for _, name := range names {
		r.line("", "    - "+name)
	}
}

// Installing announces that platform-specific dependencies are being applied.
func (r *Reporter) Installing() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.line(style.Iris, "Installing platform-specific dependencies")
}

// Applied reports the outcome for one requirement.
func (r *Reporter) Applied(requirement string, match domain.Match, outcome domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.line("", fmt.Sprintf("  - %s: %s (%s) [%s]",
		requirement, match.Package, match.Constraint, r.colored(style.ForOutcome(outcome), string(outcome))))
}

// NothingToDo reports that no requirement had to be applied.
func (r *Reporter) NothingToDo() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.line(style.Slate, "Nothing to install or update")
}

// resolutionDoc is the machine-readable shape of a resolution.
type resolutionDoc struct {
	Platform   domain.Platform         `json:"platform" yaml:"platform"`
	Resolved   map[string]domain.Match `json:"resolved" yaml:"resolved"`
	Unresolved []string                `json:"unresolved" yaml:"unresolved"`
}

// Resolution writes res for platform to w in the given format.
func (r *Reporter) Resolution(w io.Writer, platform domain.Platform, res domain.Resolution, format string) error {
	doc := resolutionDoc{Platform: platform, Resolved: res.Resolved, Unresolved: res.Unresolved}
	if doc.Resolved == nil {
		doc.Resolved = map[string]domain.Match{}
	}
	if doc.Unresolved == nil {
		doc.Unresolved = []string{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		return yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true)).Encode(doc)
	case FormatText, "":
		return writeText(output.New(w), doc)
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}

func writeText(out *termenv.Output, doc resolutionDoc) error {
	var b strings.Builder

	b.WriteString("Platform: " + out.String(doc.Platform.String()).Bold().String() + "\n")

	names := make([]string, 0, len(doc.Resolved))
	for name := range doc.Resolved {
		names = append(names, name)
	}
	slices.Sort(names)

	if len(names) > 0 {
		b.WriteString("\nResolved platform-specific packages:\n")
		for _, name := range names {
			m := doc.Resolved[name]
			fmt.Fprintf(&b, "  %s %s: %s (%s) [variant %d]\n",
				out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String(),
				name, m.Package, m.Constraint, m.Index)
		}
	}

	if len(doc.Unresolved) > 0 {
		b.WriteString("\nUnresolved platform-specific packages:\n")
		for _, name := range doc.Unresolved {
			fmt.Fprintf(&b, "  %s %s\n",
				out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String(), name)
		}
	}

	if len(names) == 0 && len(doc.Unresolved) == 0 {
		b.WriteString("\nNo platform-specific requirements\n")
	}

	_, err := out.WriteString(b.String())
	return err
}

// line must be called with mu held. An empty color writes the text unstyled.
func (r *Reporter) line(color lipgloss.Color, text string) {
	_, _ = r.out.WriteString(r.colored(color, text) + "\n")
}

func (r *Reporter) colored(color lipgloss.Color, text string) string {
	if color == "" || text == "" {
		return text
	}
	return r.out.String(text).Foreground(termenv.RGBColor(string(color))).String()
}
