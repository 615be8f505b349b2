package roletest

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"bootware/pkg/logging"
)

const executorSubsystem = "Executor"

// execCommandContext is a variable to allow mocking in tests
var execCommandContext = exec.CommandContext

// CommandOutput is what a CommandRunner observed for one command.
type CommandOutput struct {
	ExitCode int
	Stderr   []byte
	// Err is set when the command could not be started or waited for.
	Err error
}

// Failed reports whether the command did not exit with status zero.
func (o CommandOutput) Failed() bool {
	return o.Err != nil || o.ExitCode != 0
}

// shellRunner runs commands as "<shell> -c <command>".
type shellRunner struct{}

// NewShellRunner creates a CommandRunner that spawns the given shell for
// every command. Stdout is discarded and stderr captured.
func NewShellRunner() CommandRunner {
	return &shellRunner{}
}

func (r *shellRunner) Run(ctx context.Context, shell, command string) CommandOutput {
	cmd := execCommandContext(ctx, shell, "-c", command)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := CommandOutput{Stderr: stderr.Bytes()}
	if err == nil {
		return out
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 when the process was terminated by a signal.
		out.ExitCode = exitErr.ExitCode()
		return out
	}

	out.ExitCode = -1
	out.Err = err
	return out
}

// Executor tests one role at a time.
type Executor struct {
	matcher  *Matcher
	selector *Selector
	runner   CommandRunner
	reporter Reporter
}

// NewExecutor creates an executor for the given distro set.
func NewExecutor(distros DistroSet, runner CommandRunner, reporter Reporter) *Executor {
	return &Executor{
		matcher:  NewMatcher(distros),
		selector: NewSelector(distros),
		runner:   runner,
		reporter: reporter,
	}
}

// RunRole evaluates skip conditions, then runs every selected command in
// order. A failing command never stops the remaining ones; cancellation of
// ctx does, and the role is then marked interrupted.
func (e *Executor) RunRole(ctx context.Context, system System, role Role) RoleResult {
	e.reporter.ReportRoleStart(role)

	start := time.Now()
	result := RoleResult{Role: role.Name, StartTime: start}

	switch {
	case e.matcher.ShouldSkip(system, role.Skip):
		logging.Debug(executorSubsystem, "Role %s skipped by condition on %s/%s", role.Name, system.OS, system.Arch)
		result.Outcome = OutcomeSkip
	case role.Tests.Kind() == TestSetNone:
		logging.Debug(executorSubsystem, "Role %s declares no tests", role.Name)
		result.Outcome = OutcomeSkip
	default:
		result.Commands = e.selector.SelectCommands(role, system)
		result.Failures = e.runCommands(ctx, system, result.Commands)
		switch {
		case ctx.Err() != nil:
			logging.Debug(executorSubsystem, "Role %s interrupted: %v", role.Name, ctx.Err())
			result.Outcome = OutcomeInterrupted
		case len(result.Failures) > 0:
			result.Outcome = OutcomeFail
		default:
			result.Outcome = OutcomePass
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(start)

	e.reporter.ReportRoleResult(result)
	return result
}

func (e *Executor) runCommands(ctx context.Context, system System, commands []string) []CommandFailure {
	var failures []CommandFailure
	for _, command := range commands {
		if ctx.Err() != nil {
			break
		}
		logging.Debug(executorSubsystem, "Running %q through %s", command, system.Shell)

		out := e.runner.Run(ctx, system.Shell, command)
		// A command killed by the cancellation did not fail on its own.
		if ctx.Err() != nil {
			break
		}
		if !out.Failed() {
			continue
		}

		failure := CommandFailure{
			Command:  command,
			ExitCode: out.ExitCode,
			Stderr:   string(out.Stderr),
		}
		if out.Err != nil {
			failure.Error = out.Err.Error()
		}
		failures = append(failures, failure)
	}
	return failures
}
