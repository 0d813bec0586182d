package platform

import (
	"fmt"
	"strings"
)

// normalizeArch converts GOARCH values to normalized architecture names.
// Only amd64 and arm64 have ffmpeg builds.
func normalizeArch(arch string) (string, error) {
	switch arch {
	case "amd64", "x86_64":
		return "amd64", nil
	case "arm64", "aarch64":
		return "arm64", nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s (only amd64 and arm64 are supported)", arch)
	}
}

// normalizeID converts distro IDs and versions to trimmed lowercase.
func normalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
