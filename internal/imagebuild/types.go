package imagebuild

import (
	"fmt"
	"strings"
)

// BuildTarget describes one distro image to build.
type BuildTarget struct {
	Distro string
	Arch   string
	// Cache keeps the runtime's layer cache; false passes --no-cache
	Cache bool
	// Skip lists roles excluded inside the image
	Skip []string
	// Tags lists roles included inside the image
	Tags []string
}

// Options configures how targets become build commands.
type Options struct {
	// BuildFile is a template for the build file path
	BuildFile string
	// ImageTag is a template for the image tag
	ImageTag string
	// Context is the build context directory
	Context string
	// Vars are extra template variables
	Vars map[string]string
}

// BuildError reports the build that stopped a run. Remaining targets are
// never attempted.
type BuildError struct {
	Distro  string
	Runtime string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("end to end test %s failed with %s: %v", e.Distro, e.Runtime, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewTargets builds one target per distro sharing the remaining settings.
func NewTargets(distros []string, arch string, cache bool, skip, tags []string) []BuildTarget {
	targets := make([]BuildTarget, 0, len(distros))
	for _, distro := range distros {
		distro = strings.TrimSpace(distro)
		if distro == "" {
			continue
		}
		targets = append(targets, BuildTarget{
			Distro: distro,
			Arch:   arch,
			Cache:  cache,
			Skip:   append([]string(nil), skip...),
			Tags:   append([]string(nil), tags...),
		})
	}
	return targets
}

func joinRoles(roles []string, fallback string) string {
	if len(roles) == 0 {
		return fallback
	}
	return strings.Join(roles, ",")
}
