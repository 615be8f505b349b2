package containerizer

import (
	"context"
)

// ContainerRuntime defines the interface for container runtime operations
type ContainerRuntime interface {
	// Name returns the runtime executable, for example "podman"
	Name() string

	// BuildImage builds an image and blocks until the build finishes
	BuildImage(ctx context.Context, spec BuildSpec) error
}

// BuildSpec holds configuration for building an image
type BuildSpec struct {
	File      string     // Containerfile or Dockerfile path
	Tag       string     // Image tag
	Platform  string     // Target platform, for example linux/arm64
	NoCache   bool       // Disable the layer cache
	BuildArgs []BuildArg // Build arguments in command line order
	Context   string     // Build context directory
}

// BuildArg is a single --build-arg name=value pair.
type BuildArg struct {
	Name  string
	Value string
}

// String formats the argument as passed on the command line.
func (a BuildArg) String() string {
	return a.Name + "=" + a.Value
}
