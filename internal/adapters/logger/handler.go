package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/platdep/internal/ui/output"
	"go.trai.ch/platdep/internal/ui/style"
)

// levelStyle is the icon and colour a record is rendered with.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return levelStyle{icon: style.Warning, color: style.Yellow}
	case level < slog.LevelInfo:
		return levelStyle{icon: style.Dot, color: style.Iris}
	default:
		return levelStyle{color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler writing one coloured line per record.
// Debug, warn and error records carry an icon; info records are plain.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr when w is nil.
// The level in opts is consulted on every record, so a *slog.LevelVar can be
// changed after construction.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	st := styleFor(r.Level)

	var b strings.Builder
	if st.icon != "" {
		b.WriteString(st.icon + " ")
	}
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		writeAttr(&b, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, h.prefix, attr)
		return true
	})

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(string(st.color))).String()
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a Handler that appends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	qualified := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		qualified[i] = slog.Attr{Key: h.prefix + a.Key, Value: a.Value}
	}

	clone := *h
	clone.attrs = append(slices.Clip(h.attrs), qualified...)
	return &clone
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// writeAttr appends " key=value". Values containing spaces are quoted.
func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	value := attr.Value.Resolve().String()
	if value == "" || strings.ContainsAny(value, " \t\"=") {
		value = strconv.Quote(value)
	}
	b.WriteString(" " + prefix + attr.Key + "=" + value)
}
