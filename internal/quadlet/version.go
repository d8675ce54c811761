package quadlet

import "fmt"

// PodmanVersion identifies a podman release with quadlet support.
// Versions are ordered by release chronology; new versions are only ever
// appended so comparisons between existing constants stay valid.
type PodmanVersion int

// Supported podman releases, oldest first.
const (
	V4_4 PodmanVersion = iota
	V4_5
	V4_6
	V4_7
	V4_8
	V5_0
)

// Latest is the newest supported podman version.
const Latest = V5_0

// String returns the canonical dotted form, e.g. "4.4".
func (v PodmanVersion) String() string {
	switch v {
	case V4_4:
		return "4.4"
	case V4_5:
		return "4.5"
	case V4_6:
		return "4.6"
	case V4_7:
		return "4.7"
	case V4_8:
		return "4.8"
	case V5_0:
		return "5.0"
	}
	return fmt.Sprintf("PodmanVersion(%d)", int(v))
}

// versionAliases maps every accepted version token to its PodmanVersion.
// Patch releases alias their minor version; "latest" aliases the newest one.
var versionAliases = map[string]PodmanVersion{
	"4.4": V4_4, "4.4.0": V4_4, "4.4.1": V4_4, "4.4.2": V4_4, "4.4.3": V4_4, "4.4.4": V4_4,
	"4.5": V4_5, "4.5.0": V4_5, "4.5.1": V4_5,
	"4.6": V4_6, "4.6.0": V4_6, "4.6.1": V4_6, "4.6.2": V4_6,
	"4.7": V4_7, "4.7.0": V4_7, "4.7.1": V4_7, "4.7.2": V4_7,
	"4.8": V4_8, "4.8.0": V4_8, "4.8.1": V4_8, "4.8.2": V4_8, "4.8.3": V4_8,
	"5.0": V5_0, "5.0.0": V5_0, "5.0.1": V5_0, "5.0.2": V5_0, "5.0.3": V5_0,
	"latest": Latest,
}

// ParsePodmanVersion parses a version token from configuration, accepting
// canonical minor versions, their patch-release aliases, and "latest".
func ParsePodmanVersion(s string) (PodmanVersion, error) {
	if v, ok := versionAliases[s]; ok {
		return v, nil
	}
	return Latest, fmt.Errorf("unsupported podman version %q", s)
}
