package ffbinaries

import (
	"fmt"
	"sort"
	"strings"
)

// Platform identifiers used by the ffbinaries API.
const (
	PlatformWindows64  = "windows-64"
	PlatformOSX64      = "osx-64"
	PlatformLinux64    = "linux-64"
	PlatformLinuxARM64 = "linux-arm64"
)

// ToolFFmpeg is the component name of the ffmpeg binary.
const ToolFFmpeg = "ffmpeg"

// Release is one published ffbinaries version
type Release struct {
	Version string
	// Bin maps platform -> tool -> archive URL
	Bin map[string]map[string]string
}

// Platforms returns the platform identifiers in the release, sorted.
func (r *Release) Platforms() []string {
	platforms := make([]string, 0, len(r.Bin))
	for p := range r.Bin {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	return platforms
}

// URL returns the archive URL for tool on platform.
func (r *Release) URL(platform, tool string) (string, error) {
	tools, ok := r.Bin[platform]
	if !ok {
		return "", fmt.Errorf("release %s has no builds for platform %q (available: %s)",
			r.Version, platform, strings.Join(r.Platforms(), ", "))
	}
	url, ok := tools[tool]
	if !ok {
		return "", fmt.Errorf("release %s has no %s build for platform %q", r.Version, tool, platform)
	}
	return url, nil
}

// BinaryName returns the executable name of tool on platform.
func BinaryName(platform, tool string) string {
	if strings.HasPrefix(platform, "windows") {
		return tool + ".exe"
	}
	return tool
}
