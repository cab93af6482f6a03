// Package platform detects the operating system family and processor word
// size of the running process.
package platform

import (
	"runtime"
	"strconv"
	"sync"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/platdep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Identify returns the host identification string.
type Identify func() (string, error)

// Detector implements ports.PlatformDetector.
// The platform is computed on first use and cached for the lifetime of the detector.
type Detector struct {
	logger   ports.Logger
	identify Identify
	wordSize int

	once     sync.Once
	platform domain.Platform
}

// New creates a Detector for the running host.
func New(logger ports.Logger) *Detector {
	return NewDetector(logger, hostIdent, strconv.IntSize/8)
}

// NewDetector creates a Detector with an explicit identify function and native word size in bytes.
func NewDetector(logger ports.Logger, identify Identify, wordSize int) *Detector {
	return &Detector{
		logger:   logger,
		identify: identify,
		wordSize: wordSize,
	}
}

// Detect returns the current platform. It never fails; values that cannot be
// mapped are reported as undefined.
func (d *Detector) Detect() domain.Platform {
	d.once.Do(func() {
		ident, err := d.identify()
		if err != nil {
			d.logger.Debug(zerr.Wrap(err, "host identification failed, using "+runtime.GOOS).Error())
			ident = runtime.GOOS
		}

		d.platform = domain.Platform{
			OS:   domain.DetectOS(ident),
			Arch: domain.ArchForWordSize(d.wordSize),
		}
		d.logger.Debug("detected platform " + d.platform.String() + " from " + strconv.Quote(ident))
	})
	return d.platform
}
