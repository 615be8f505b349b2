package roletest

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// linuxKey is the condition value and tests key standing for any Linux distro
	linuxKey = "linux"
	// defaultKey is the tests key used when no OS specific entry applies
	defaultKey = "default"
)

// knownDistroSets are the Linux distro sets shipped by past releases,
// keyed by version.
var knownDistroSets = map[string][]string{
	"v1": {"alpine", "arch", "debian", "fedora", "ubuntu"},
	"v2": {"alpine", "arch", "debian", "fedora", "suse", "ubuntu"},
}

// DistroSet is the versioned set of OS names that count as Linux
// distributions.
type DistroSet struct {
	Version string   `json:"version"`
	Names   []string `json:"names"`
}

// KnownDistroSetVersions lists the versions accepted by ResolveDistroSet.
func KnownDistroSetVersions() []string {
	versions := make([]string, 0, len(knownDistroSets))
	for v := range knownDistroSets {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// ResolveDistroSet returns the set for version, or a custom set when names
// is non-empty.
func ResolveDistroSet(version string, names []string) (DistroSet, error) {
	if len(names) > 0 {
		if version == "" {
			version = "custom"
		}
		return DistroSet{Version: version, Names: append([]string(nil), names...)}, nil
	}

	known, ok := knownDistroSets[version]
	if !ok {
		return DistroSet{}, fmt.Errorf("unknown linux distro set %q (known: %s)",
			version, strings.Join(KnownDistroSetVersions(), ", "))
	}
	return DistroSet{Version: version, Names: append([]string(nil), known...)}, nil
}

// Contains reports whether osName is a Linux distro in this set.
func (d DistroSet) Contains(osName string) bool {
	for _, name := range d.Names {
		if name == osName {
			return true
		}
	}
	return false
}

// Matcher evaluates skip conditions against a system.
type Matcher struct {
	distros DistroSet
}

// NewMatcher creates a matcher that resolves "linux" through distros.
func NewMatcher(distros DistroSet) *Matcher {
	return &Matcher{distros: distros}
}

// ShouldSkip reports whether any condition matches the system. A nil or
// empty list never skips; an empty condition always matches.
func (m *Matcher) ShouldSkip(system System, conditions []SkipCondition) bool {
	for _, condition := range conditions {
		if m.matches(system, condition) {
			return true
		}
	}
	return false
}

// matches requires every present key of the condition to agree with the system.
func (m *Matcher) matches(system System, condition SkipCondition) bool {
	for key, expected := range condition {
		actual, known := system.Attribute(key)
		if !known {
			return false
		}

		if key == "os" && expected == linuxKey {
			if !m.distros.Contains(actual) {
				return false
			}
			continue
		}

		if actual != expected {
			return false
		}
	}
	return true
}
