package config

// BootwareConfig is the top-level configuration structure for bootware.
type BootwareConfig struct {
	// Catalog is the path to the role catalog (JSON or YAML).
	Catalog string `yaml:"catalog"`
	// LinuxDistros selects the set of OS names treated as Linux distributions.
	LinuxDistros DistroSetConfig `yaml:"linux_distros"`
	// E2E configures the container image build driver.
	E2E E2EConfig `yaml:"e2e"`
}

// DistroSetConfig names a Linux distro set either by version or explicitly.
type DistroSetConfig struct {
	Version string   `yaml:"version,omitempty"`
	Names   []string `yaml:"names,omitempty"`
}

// E2EConfig holds settings for end to end image builds.
type E2EConfig struct {
	// Distros built when --distro is not given.
	Distros []string `yaml:"distros"`
	// BuildFile is a template for the per distro build description path.
	BuildFile string `yaml:"build_file"`
	// ImageTag is a template for the per distro image tag.
	ImageTag string `yaml:"image_tag"`
	// Context is the build context directory.
	Context string `yaml:"context"`
	// Runtimes lists container runtimes to probe, in order of preference.
	Runtimes []string `yaml:"runtimes"`
	// Skip is the default deny list passed as the skip build argument.
	Skip []string `yaml:"skip"`
	// Tags is the default allow list passed as the tags build argument.
	Tags []string `yaml:"tags"`
	// Vars are extra variables available to the build_file and image_tag templates.
	Vars map[string]string `yaml:"vars,omitempty"`
}
