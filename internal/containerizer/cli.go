package containerizer

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"bootware/pkg/logging"
)

const runtimeSubsystem = "Runtime"

// execCommandContext is a variable to allow mocking in tests
var execCommandContext = exec.CommandContext

// CLIRuntime implements ContainerRuntime by shelling out to a docker
// compatible command line client.
type CLIRuntime struct {
	name   string
	stdout io.Writer
	stderr io.Writer
}

// NewCLIRuntime creates a runtime that streams build output to the given
// writers.
func NewCLIRuntime(name string, stdout, stderr io.Writer) *CLIRuntime {
	return &CLIRuntime{name: name, stdout: stdout, stderr: stderr}
}

// Name returns the runtime executable
func (r *CLIRuntime) Name() string {
	return r.name
}

// BuildImage runs "<runtime> build" for spec.
func (r *CLIRuntime) BuildImage(ctx context.Context, spec BuildSpec) error {
	args := BuildCommandArgs(spec)
	logging.Debug(runtimeSubsystem, "Building image with command: %s %s", r.name, strings.Join(args, " "))

	cmd := execCommandContext(ctx, r.name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to build image %s: %w", spec.Tag, err)
	}

	logging.Info(runtimeSubsystem, "Built image %s", spec.Tag)
	return nil
}

// BuildCommandArgs returns the build subcommand and its flags. The build
// context comes last.
func BuildCommandArgs(spec BuildSpec) []string {
	args := []string{"build"}
	if spec.NoCache {
		args = append(args, "--no-cache")
	}
	args = append(args, "--file", spec.File, "--tag", spec.Tag)
	if spec.Platform != "" {
		args = append(args, "--platform", spec.Platform)
	}
	for _, arg := range spec.BuildArgs {
		args = append(args, "--build-arg", arg.String())
	}

	buildContext := spec.Context
	if buildContext == "" {
		buildContext = "."
	}
	return append(args, buildContext)
}
