package containerizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"bootware/pkg/logging"
)

// RuntimeType defines the type of container runtime
type RuntimeType string

const (
	RuntimeTypeDocker RuntimeType = "docker"
	RuntimeTypePodman RuntimeType = "podman"
)

// DefaultRuntimeCandidates is the detection order. Podman comes first
// since it runs rootless.
var DefaultRuntimeCandidates = []string{string(RuntimeTypePodman), string(RuntimeTypeDocker)}

// ErrNoRuntime is returned when no candidate runtime responds.
var ErrNoRuntime = errors.New("no container runtime available")

// ProbeFunc reports whether the named runtime can be used.
type ProbeFunc func(ctx context.Context, name string) bool

// Probe runs "<name> --version" and reports whether it exited with status zero.
func Probe(ctx context.Context, name string) bool {
	cmd := execCommandContext(ctx, name, "--version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		logging.Debug(runtimeSubsystem, "Runtime %s not available: %v", name, err)
		return false
	}
	logging.Debug(runtimeSubsystem, "Runtime %s available", name)
	return true
}

// DetectRuntime returns the first candidate for which probe succeeds.
func DetectRuntime(ctx context.Context, candidates []string, probe ProbeFunc) (string, error) {
	if probe == nil {
		probe = Probe
	}
	for _, name := range candidates {
		if probe(ctx, name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w (tried: %s)", ErrNoRuntime, strings.Join(candidates, ", "))
}

// NewContainerRuntime creates a container runtime of the given type that
// streams build output to stdout and stderr.
func NewContainerRuntime(runtimeType string, stdout, stderr io.Writer) (ContainerRuntime, error) {
	rt := RuntimeType(strings.ToLower(strings.TrimSpace(runtimeType)))

	switch rt {
	case RuntimeTypeDocker, RuntimeTypePodman:
		return NewCLIRuntime(string(rt), stdout, stderr), nil
	case "":
		return nil, fmt.Errorf("container runtime must not be empty")
	default:
		return nil, fmt.Errorf("unsupported container runtime: %s", runtimeType)
	}
}
