package fetch

import (
	"strings"

	"github.com/ZebulonRouseFrantzich/quilter/internal/ffbinaries"
)

// Tool is the binary fetched for every target.
const Tool = ffbinaries.ToolFFmpeg

// Canonical filenames of the bundled sidecar binaries.
const (
	FilenameWindowsX64   = "ffmpeg-x86_64-pc-windows-msvc.exe"
	FilenameMacOSIntel   = "ffmpeg-x86_64-apple-darwin"
	FilenameMacOSARM     = "ffmpeg-aarch64-apple-darwin"
	FilenameLinuxX64     = "ffmpeg-x86_64-unknown-linux-gnu"
	FilenameLinuxAArch64 = "ffmpeg-aarch64-unknown-linux-gnu"
)

// Target pairs a provider platform identifier with the target-triple
// filename the binary must have in the destination directory.
type Target struct {
	Platform string
	Filename string
}

// BinaryName is the executable name expected inside the download.
func (t Target) BinaryName() string {
	return ffbinaries.BinaryName(t.Platform, Tool)
}

// Executable reports whether the destination file gets 0755 permissions.
func (t Target) Executable() bool {
	return !strings.HasSuffix(t.Filename, ".exe")
}

// targets is the fixed platform table. The Apple Silicon slot is not listed:
// no native build is published, so it is derived from the Intel binary.
var targets = []Target{
	{Platform: ffbinaries.PlatformWindows64, Filename: FilenameWindowsX64},
	{Platform: ffbinaries.PlatformOSX64, Filename: FilenameMacOSIntel},
	{Platform: ffbinaries.PlatformLinux64, Filename: FilenameLinuxX64},
	{Platform: ffbinaries.PlatformLinuxARM64, Filename: FilenameLinuxAArch64},
}

// Targets returns a copy of the fixed platform table in declaration order.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets)
	return out
}

// TargetFor returns the table entry for a provider platform identifier.
func TargetFor(platform string) (Target, bool) {
	for _, t := range targets {
		if t.Platform == platform {
			return t, true
		}
	}
	return Target{}, false
}
