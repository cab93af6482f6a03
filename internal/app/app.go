// Package app implements the application layer for platdep.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/platdep/internal/engine/resolver"
	"go.trai.ch/platdep/internal/engine/strategy"
	"go.trai.ch/zerr"
)

// Options configures a single install, update or resolve run.
type Options struct {
	// Dir is the directory the configuration search starts from.
	Dir string
	// Strategy overrides the configured apply strategy.
	Strategy string
	// Strict turns unresolved requirements into an error.
	Strict bool
	// OS and Arch override the detected platform.
	OS   string
	Arch string
}

// levelLogger is implemented by loggers whose verbosity and format can change.
type levelLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	detector     ports.PlatformDetector
	store        ports.StateStore
	reporter     ports.Reporter
	tracer       ports.Tracer
	hooks        ports.Hooks
	logger       ports.Logger
	strategies   *strategy.Set
	now          func() time.Time
}

// New creates a new App instance and registers its lifecycle handlers on hooks.
func New(
	loader ports.ConfigLoader,
	detector ports.PlatformDetector,
	repo ports.PackageRepository,
	installer ports.Installer,
	downloader ports.Downloader,
	linker ports.RequirementLinker,
	store ports.StateStore,
	reporter ports.Reporter,
	tracer ports.Tracer,
	hooks ports.Hooks,
	log ports.Logger,
) *App {
	a := &App{
		configLoader: loader,
		detector:     detector,
		store:        store,
		reporter:     reporter,
		tracer:       tracer,
		hooks:        hooks,
		logger:       log,
		strategies: strategy.NewSet(
			strategy.NewLink(linker),
			strategy.NewDownload(repo, downloader, log),
			strategy.NewClone(repo, installer, log),
		),
		now: time.Now,
	}

	hooks.Register(domain.PreInstall, a.apply)
	hooks.Register(domain.PreUpdate, a.apply)
	hooks.Register(domain.PostInstall, a.finish)
	hooks.Register(domain.PostUpdate, a.finish)

	return a
}

// WithClock replaces the clock used to timestamp applied records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ConfigureLogging enables debug output and JSON logs when the logger supports it.
func (a *App) ConfigureLogging(verbose, jsonLogs bool) {
	l, ok := a.logger.(levelLogger)
	if !ok {
		return
	}
	l.SetVerbose(verbose)
	l.SetJSON(jsonLogs)
}

// Strategies returns the names of the available apply strategies.
func (a *App) Strategies() []string {
	return a.strategies.Names()
}

// Install resolves and applies the platform-specific requirements.
func (a *App) Install(ctx context.Context, opts Options) error {
	return a.run(ctx, opts, domain.PreInstall, domain.PostInstall)
}

// Update re-runs the resolution and applies it again.
// Strategies skip requirements that are already in place.
func (a *App) Update(ctx context.Context, opts Options) error {
	return a.run(ctx, opts, domain.PreUpdate, domain.PostUpdate)
}

// Resolve resolves the requirements without applying anything.
func (a *App) Resolve(ctx context.Context, opts Options) (domain.Platform, domain.Resolution, error) {
	s, err := a.prepare(opts)
	if err != nil {
		return domain.Platform{}, domain.Resolution{}, err
	}
	a.resolve(ctx, s)
	return s.platform, s.resolution, nil
}

// WriteResolution resolves the requirements and renders the result to w.
func (a *App) WriteResolution(ctx context.Context, w io.Writer, opts Options, format string) error {
	platform, res, err := a.Resolve(ctx, opts)
	if err != nil {
		return err
	}
	return a.reporter.Resolution(w, platform, res, format)
}

// Platform returns the detected platform with the overrides in opts applied.
func (a *App) Platform(opts Options) (domain.Platform, error) {
	p := a.detector.Detect()

	if opts.OS != "" {
		os, ok := domain.ParseOS(opts.OS)
		if !ok {
			return domain.Platform{}, zerr.With(domain.ErrInvalidPlatformOverride, "os", opts.OS)
		}
		p.OS = os
	}
	if opts.Arch != "" {
		arch, ok := domain.ParseArch(opts.Arch)
		if !ok {
			return domain.Platform{}, zerr.With(domain.ErrInvalidPlatformOverride, "architecture", opts.Arch)
		}
		p.Arch = arch
	}

	return p, nil
}

func (a *App) run(ctx context.Context, opts Options, pre, post domain.Event) error {
	s, err := a.prepare(opts)
	if err != nil {
		return err
	}

	ctx = withSession(ctx, s)
	if err := a.hooks.Dispatch(ctx, pre); err != nil {
		return err
	}
	return a.hooks.Dispatch(ctx, post)
}

func (a *App) prepare(opts Options) (*session, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	m, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	platform, err := a.Platform(opts)
	if err != nil {
		return nil, err
	}

	name := opts.Strategy
	if name == "" {
		name = m.Strategy
	}
	st, err := a.strategies.Get(name)
	if err != nil {
		return nil, err
	}

	return &session{opts: opts, manifest: m, platform: platform, strategy: st}, nil
}

func (a *App) resolve(ctx context.Context, s *session) {
	_, span := a.tracer.Start(ctx, "resolve",
		ports.WithAttribute("platform", s.platform.String()),
		ports.WithAttribute("strategy", s.strategy.Name()),
		ports.WithAttribute("requirements", len(s.manifest.Requirements)),
	)
	defer span.End()

	s.resolution = resolver.ResolveFunc(s.manifest.Requirements, s.platform, func(v domain.Variant) bool {
		return s.strategy.Accept(s.manifest, v)
	})

	span.SetAttribute("resolved", len(s.resolution.Resolved))
	span.SetAttribute("unresolved", len(s.resolution.Unresolved))
}

// apply handles the pre-install and pre-update events.
func (a *App) apply(ctx context.Context) error {
	s, ok := sessionFrom(ctx)
	if !ok {
		return nil
	}

	a.resolve(ctx, s)

	if len(s.resolution.Unresolved) > 0 {
		a.reporter.Unresolved(s.resolution.Unresolved)
		if s.opts.Strict {
			return zerr.With(domain.ErrUnresolvedRequirements, "requirements", strings.Join(s.resolution.Unresolved, ", "))
		}
	}

	if len(s.resolution.Resolved) == 0 {
		return nil
	}

	a.reporter.Installing()

	for _, req := range s.manifest.Requirements {
		match, ok := s.resolution.Resolved[req.Name]
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.applyOne(ctx, s, req.Name, match); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) applyOne(ctx context.Context, s *session, name string, match domain.Match) error {
	record := domain.AppliedRecord{
		Requirement: name,
		Package:     match.Package,
		Constraint:  match.Constraint,
		Strategy:    s.strategy.Name(),
		Platform:    s.platform,
	}

	prev, err := a.store.Get(s.manifest.Root, s.platform, name)
	if err != nil {
		return err
	}
	if prev != nil && !prev.Same(record) {
		a.logger.Debug(fmt.Sprintf("%s switches from %s %s to %s %s",
			name, prev.Package, prev.Constraint, match.Package, match.Constraint))
	}

	ctx, span := a.tracer.Start(ctx, "apply."+name,
		ports.WithAttribute("package", match.Package),
		ports.WithAttribute("constraint", match.Constraint),
		ports.WithAttribute("strategy", s.strategy.Name()),
	)
	defer span.End()

	outcome, err := s.strategy.Apply(ctx, s.manifest, name, match)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("outcome", string(outcome))

	a.reporter.Applied(name, match, outcome)

	if outcome == domain.OutcomeSkipped && prev != nil && prev.Same(record) {
		return nil
	}
	record.Outcome = outcome
	record.AppliedAt = a.now()
	s.applied = append(s.applied, record)
	return nil
}

// finish handles the post-install and post-update events.
func (a *App) finish(ctx context.Context) error {
	s, ok := sessionFrom(ctx)
	if !ok {
		return nil
	}

	for _, record := range s.applied {
		if err := a.store.Put(s.manifest.Root, record); err != nil {
			return err
		}
	}

	keep := make([]string, 0, len(s.resolution.Resolved))
	for _, req := range s.manifest.Requirements {
		if _, ok := s.resolution.Resolved[req.Name]; ok {
			keep = append(keep, req.Name)
		}
	}
	dropped, err := a.store.Prune(s.manifest.Root, s.platform, keep)
	if err != nil {
		return err
	}
	if len(dropped) > 0 {
		a.logger.Debug(fmt.Sprintf("forgot %s on %s", strings.Join(dropped, ", "), s.platform))
	}

	if !s.changed() {
		a.reporter.NothingToDo()
		return nil
	}

	a.logger.Debug(fmt.Sprintf("recorded %d applied requirement(s) for %s", len(s.applied), s.platform))
	return nil
}
