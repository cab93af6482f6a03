// Package config provides the configuration loader for platdep.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	keyOS           = "os"
	keyArchitecture = "architecture"
)

// Loader implements ports.ConfigLoader for platdep.yaml and composer.json.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Mode represents which kind of configuration file was found.
type Mode string

const (
	// ModeNative indicates a platdep.yaml file.
	ModeNative Mode = "native"
	// ModeComposer indicates a composer.json file.
	ModeComposer Mode = "composer"
)

// Load finds the configuration for cwd and returns the validated manifest.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	configPath, mode, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeNative:
		return l.loadPlatdepfile(configPath)
	case ModeComposer:
		return l.loadComposerfile(configPath)
	default:
		return nil, zerr.With(domain.ErrConfigNotFound, "mode", mode)
	}
}

// findConfiguration walks up from cwd. The nearest platdep.yaml wins; the
// nearest composer.json is only used when no platdep.yaml exists above cwd.
func (l *Loader) findConfiguration(cwd string) (string, Mode, error) {
	currentDir := cwd
	var composerCandidate string

	for {
		nativePath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(nativePath); err == nil {
			return nativePath, ModeNative, nil
		}

		if composerCandidate == "" {
			composerPath := filepath.Join(currentDir, domain.ComposerFileName)
			if _, err := os.Stat(composerPath); err == nil {
				composerCandidate = composerPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	if composerCandidate != "" {
		return composerCandidate, ModeComposer, nil
	}

	return "", "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadPlatdepfile(configPath string) (*domain.Manifest, error) {
	var file Platdepfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	requirements, err := l.parseRequirements(&file.PlatformSpecificRequire)
	if err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	return newManifest(configPath, file.Strategy, file.VendorDir, file.Repositories, file.Require, requirements), nil
}

func newManifest(
	configPath, strategy, vendorDir string,
	repositories []string,
	require map[string]string,
	requirements []domain.Requirement,
) *domain.Manifest {
	if strategy == "" {
		strategy = domain.DefaultStrategy
	}
	if vendorDir == "" {
		vendorDir = domain.DefaultVendorDir
	}
	if require == nil {
		require = make(map[string]string)
	}
	if requirements == nil {
		requirements = []domain.Requirement{}
	}

	return &domain.Manifest{
		Path:         configPath,
		Root:         filepath.Dir(configPath),
		Strategy:     strategy,
		VendorDir:    vendorDir,
		Repositories: repositories,
		Require:      require,
		Requirements: requirements,
	}
}

// parseRequirements walks the requirement mapping node so declaration order is kept.
func (l *Loader) parseRequirements(node *yaml.Node) ([]domain.Requirement, error) {
	if node.Kind == 0 || isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrConfigParseFailed, "reason", "platform-specific-require must be a mapping")
	}

	requirements := make([]domain.Requirement, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return nil, zerr.With(zerr.With(domain.ErrConfigParseFailed, "reason", "duplicate requirement"), "requirement", name)
		}
		seen[name] = true

		variants, err := parseVariants(node.Content[i+1])
		if err != nil {
			return nil, zerr.With(err, "requirement", name)
		}
		if len(variants) == 0 {
			l.Logger.Warn(fmt.Sprintf("requirement %q declares no variants and will never resolve", name))
		}

		requirements = append(requirements, domain.Requirement{Name: name, Variants: variants})
	}

	return requirements, nil
}

func parseVariants(node *yaml.Node) ([]domain.Variant, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, zerr.With(domain.ErrConfigParseFailed, "reason", "variants must be a list")
	}

	variants := make([]domain.Variant, 0, len(node.Content))
	for idx, item := range node.Content {
		v, err := parseVariant(item)
		if err != nil {
			return nil, zerr.With(err, "variant", idx)
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func parseVariant(node *yaml.Node) (domain.Variant, error) {
	var v domain.Variant
	if node.Kind != yaml.MappingNode {
		return v, zerr.With(domain.ErrMalformedVariant, "reason", "variant must be a mapping")
	}

	payloads := 0
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return v, zerr.With(domain.ErrMalformedVariant, "key", key)
		}

		switch key {
		case keyOS:
			if value.Value == "" || isNull(value) {
				continue
			}
			parsed, ok := domain.ParseOS(value.Value)
			if !ok {
				return v, zerr.With(zerr.With(domain.ErrInvalidConstraint, "os", value.Value), "expected", "macosx, freebsd, windows or linux")
			}
			v.OS = parsed
		case keyArchitecture:
			if value.Value == "" || isNull(value) {
				continue
			}
			arch, ok := domain.ParseArch(value.Value)
			if !ok {
				return v, zerr.With(zerr.With(domain.ErrInvalidConstraint, "architecture", value.Value), "expected", "i386 or x64")
			}
			v.Arch = arch
		default:
			payloads++
			v.Package = key
			v.Constraint = value.Value
		}
	}

	if payloads != 1 {
		return domain.Variant{}, zerr.With(domain.ErrMalformedVariant, "packages", payloads)
	}
	if err := ValidateConstraint(v.Constraint); err != nil {
		return domain.Variant{}, zerr.With(err, "package", v.Package)
	}

	return v, nil
}

// ValidateConstraint checks that c is a version constraint platdep can evaluate.
// "*", "latest" and branch aliases ("dev-...") are accepted verbatim; a trailing
// stability flag ("@dev") is ignored.
func ValidateConstraint(c string) error {
	c = strings.TrimSpace(c)
	if c == "" || c == "*" || c == "latest" || strings.HasPrefix(c, "dev-") {
		return nil
	}
	if at := strings.LastIndex(c, "@"); at > 0 {
		c = c[:at]
	}
	if _, err := semver.NewConstraint(c); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidVersionConstraint.Error()), "constraint", c)
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func readConfig(configPath string) ([]byte, error) {
	// #nosec G304 -- configPath is discovered by findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", configPath)
	}
	return data, nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	configFile, err := readConfig(configPath)
	if err != nil {
		return err
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "file", configPath)
	}

	return nil
}
