// Package platform detects the host OS and architecture and maps them onto
// the identifiers quilter works with: ffbinaries platform codes and Rust
// target triples.
//
// Detection uses runtime.GOOS/GOARCH, plus gopsutil for Linux distribution
// details. The result can be injected into the Lua config as a read-only
// platform table, where the distribution appears as platform.distro.
package platform

import (
	"context"
	"fmt"
)

// Info contains platform detection information.
type Info struct {
	OS            string // "linux", "darwin", "windows"
	Arch          string // "amd64", "arm64" (normalized)
	ArchRaw       string // original GOARCH
	Distro        string // distro ID (Linux only, e.g., "ubuntu")
	DistroVersion string // distro version (Linux only, e.g., "22.04")
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// IsAppleSilicon returns true if running on Apple Silicon (macOS + arm64).
func (i *Info) IsAppleSilicon() bool {
	return i.OS == "darwin" && i.Arch == "arm64"
}

// FFBinariesPlatform returns the ffbinaries platform code whose build runs
// on this host. Apple Silicon maps to osx-64, which runs under Rosetta.
func (i *Info) FFBinariesPlatform() (string, error) {
	switch {
	case i.OS == "windows" && i.Arch == "amd64":
		return "windows-64", nil
	case i.OS == "darwin":
		return "osx-64", nil
	case i.OS == "linux" && i.Arch == "amd64":
		return "linux-64", nil
	case i.OS == "linux" && i.Arch == "arm64":
		return "linux-arm64", nil
	default:
		return "", fmt.Errorf("no ffmpeg build for %s/%s", i.OS, i.Arch)
	}
}

// Triple returns the Rust target triple of the host, as used in sidecar
// filenames.
func (i *Info) Triple() (string, error) {
	arch, ok := map[string]string{"amd64": "x86_64", "arm64": "aarch64"}[i.Arch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", i.Arch)
	}
	switch i.OS {
	case "windows":
		return arch + "-pc-windows-msvc", nil
	case "darwin":
		return arch + "-apple-darwin", nil
	case "linux":
		return arch + "-unknown-linux-gnu", nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", i.OS)
	}
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
