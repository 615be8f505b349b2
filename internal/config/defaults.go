package config

const (
	// DefaultCatalogPath is the role catalog location relative to the repository root.
	DefaultCatalogPath = "data/roles.json"

	// DefaultDistroSetVersion is the Linux distro set used when none is configured.
	DefaultDistroSetVersion = "v2"

	// DefaultBuildFile renders to test/e2e/<distro>.dockerfile.
	DefaultBuildFile = "test/e2e/{{ .Distro }}.dockerfile"

	// DefaultImageTag renders to docker.io/scruffaluff/bootware:<distro>.
	DefaultImageTag = "docker.io/scruffaluff/bootware:{{ .Distro }}"
)

// GetDefaultConfig returns the default configuration for bootware.
func GetDefaultConfig() BootwareConfig {
	return BootwareConfig{
		Catalog: DefaultCatalogPath,
		LinuxDistros: DistroSetConfig{
			Version: DefaultDistroSetVersion,
		},
		E2E: E2EConfig{
			Distros:   []string{"alpine", "arch", "debian", "fedora", "suse", "ubuntu"},
			BuildFile: DefaultBuildFile,
			ImageTag:  DefaultImageTag,
			Context:   ".",
			Runtimes:  []string{"podman", "docker"},
			Skip:      []string{"none"},
			Tags:      []string{"desktop", "extras"},
		},
	}
}
