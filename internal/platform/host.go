package platform

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo describes the host distribution for display purposes only.
// Fields are empty when detection is unavailable.
type HostInfo struct {
	Platform string // e.g. "ubuntu", "darwin"
	Family   string // e.g. "debian", "Standalone Workstation"
	Version  string // e.g. "22.04"
}

// platformInformation is a seam for tests.
var platformInformation = host.PlatformInformationWithContext

// DetectHost returns best-effort distribution details.
// Detection failures are swallowed; artifact selection never depends on this.
func DetectHost(ctx context.Context) HostInfo {
	platformName, family, version, err := platformInformation(ctx)
	if err != nil {
		return HostInfo{}
	}
	return HostInfo{
		Platform: normalize(platformName),
		Family:   normalize(family),
		Version:  strings.TrimSpace(version),
	}
}

// IsZero reports whether nothing was detected.
func (h HostInfo) IsZero() bool {
	return h.Platform == ""
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
