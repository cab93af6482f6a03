package domain

import "strings"

// OS identifies an operating system family as seen by variant constraints.
type OS string

const (
	// OSMacOSX is Apple macOS (any kernel identifying as Darwin).
	OSMacOSX OS = "macosx"
	// OSFreeBSD is FreeBSD.
	OSFreeBSD OS = "freebsd"
	// OSWindows is Microsoft Windows.
	OSWindows OS = "windows"
	// OSLinux is any Linux distribution.
	OSLinux OS = "linux"
	// OSUndefined is reported when the platform string matches no known family.
	OSUndefined OS = "undefined"
)

// Arch identifies a processor word size as seen by variant constraints.
type Arch string

const (
	// ArchI386 is a 32-bit process.
	ArchI386 Arch = "i386"
	// ArchX64 is a 64-bit process.
	ArchX64 Arch = "x64"
	// ArchUndefined is reported for any other native integer width.
	ArchUndefined Arch = "undefined"
)

// osMarkers is checked in order; the first marker contained in the
// identification string decides the OS.
var osMarkers = []struct {
	marker string
	os     OS
}{
	{"darwin", OSMacOSX},
	{"win", OSWindows},
	{"freebsd", OSFreeBSD},
	{"linux", OSLinux},
}

// DetectOS classifies a platform identification string (typically the uname
// tuple). Unknown strings map to OSUndefined.
func DetectOS(ident string) OS {
	lower := strings.ToLower(ident)
	for _, m := range osMarkers {
		if strings.Contains(lower, m.marker) {
			return m.os
		}
	}
	return OSUndefined
}

// ArchForWordSize maps the native integer width in bytes to an Arch.
func ArchForWordSize(bytes int) Arch {
	switch bytes {
	case 4:
		return ArchI386
	case 8:
		return ArchX64
	default:
		return ArchUndefined
	}
}

// ParseOS returns the OS for a constraint value. Only the four concrete
// families are valid in configuration.
func ParseOS(s string) (OS, bool) {
	switch OS(s) {
	case OSMacOSX, OSFreeBSD, OSWindows, OSLinux:
		return OS(s), true
	default:
		return "", false
	}
}

// ParseArch returns the Arch for a constraint value.
func ParseArch(s string) (Arch, bool) {
	switch Arch(s) {
	case ArchI386, ArchX64:
		return Arch(s), true
	default:
		return "", false
	}
}

// Platform is the detected operating system and processor architecture.
type Platform struct {
	OS   OS   `json:"os" yaml:"os"`
	Arch Arch `json:"architecture" yaml:"architecture"`
}

// String renders the platform as "os/arch".
func (p Platform) String() string {
	return string(p.OS) + "/" + string(p.Arch)
}
