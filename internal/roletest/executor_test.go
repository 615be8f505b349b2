package roletest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner fails the commands listed in failures and records every call.
type fakeRunner struct {
	failures map[string]CommandOutput
	calls    []string
}

func (r *fakeRunner) Run(ctx context.Context, shell, command string) CommandOutput {
	r.calls = append(r.calls, command)
	if out, ok := r.failures[command]; ok {
		return out
	}
	return CommandOutput{}
}

// recordingReporter keeps the order of reporter callbacks.
type recordingReporter struct {
	events  []string
	results []RoleResult
	suite   *SuiteResult
}

func (r *recordingReporter) ReportStart(system System, config RunConfiguration, roles int) {
	r.events = append(r.events, fmt.Sprintf("start:%d", roles))
}

func (r *recordingReporter) ReportRoleStart(role Role) {
	r.events = append(r.events, "role:"+role.Name)
}

func (r *recordingReporter) ReportRoleResult(result RoleResult) {
	r.events = append(r.events, "result:"+string(result.Outcome))
	r.results = append(r.results, result)
}

func (r *recordingReporter) ReportSuiteResult(result SuiteResult) {
	r.events = append(r.events, "suite")
	r.suite = &result
}

func TestRunRole_NoShortCircuit(t *testing.T) {
	runner := &fakeRunner{failures: map[string]CommandOutput{
		"cmd1": {ExitCode: 2, Stderr: []byte("cmd1 broke")},
	}}
	reporter := &recordingReporter{}
	executor := NewExecutor(testDistros(t), runner, reporter)

	result := executor.RunRole(context.Background(), System{OS: "debian", Shell: "/bin/bash"},
		Role{Name: "tool", Tests: FlatTests("cmd1", "cmd2")})

	assert.Equal(t, OutcomeFail, result.Outcome)
	assert.Equal(t, []string{"cmd1", "cmd2"}, runner.calls)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "cmd1", result.Failures[0].Command)
	assert.Equal(t, 2, result.Failures[0].ExitCode)
	assert.Equal(t, "cmd1 broke", result.Failures[0].Stderr)
	assert.Equal(t, []string{"role:tool", "result:fail"}, reporter.events)
}

func TestRunRole_Outcomes(t *testing.T) {
	system := System{OS: "macos", Arch: "arm64", Shell: "/bin/bash"}

	tests := []struct {
		name     string
		role     Role
		want     RoleOutcome
		wantRuns []string
	}{
		{
			name:     "all commands pass",
			role:     Role{Name: "a", Tests: FlatTests("x", "y")},
			want:     OutcomePass,
			wantRuns: []string{"x", "y"},
		},
		{
			name: "skip condition matches",
			role: Role{Name: "b", Skip: []SkipCondition{{"os": "macos"}}, Tests: FlatTests("x")},
			want: OutcomeSkip,
		},
		{
			name: "no tests declared",
			role: Role{Name: "c"},
			want: OutcomeSkip,
		},
		{
			name: "no command selected",
			role: Role{Name: "d", Tests: TestsByOS(map[string][]string{"debian": {"x"}})},
			want: OutcomePass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			executor := NewExecutor(testDistros(t), runner, &recordingReporter{})

			result := executor.RunRole(context.Background(), system, tt.role)

			assert.Equal(t, tt.want, result.Outcome)
			assert.Equal(t, tt.wantRuns, runner.calls)
			assert.Empty(t, result.Failures)
			assert.False(t, result.EndTime.Before(result.StartTime))
		})
	}
}

func TestRunRole_SpawnError(t *testing.T) {
	runner := &fakeRunner{failures: map[string]CommandOutput{
		"x": {ExitCode: -1, Err: errors.New("no such file")},
	}}
	executor := NewExecutor(testDistros(t), runner, &recordingReporter{})

	result := executor.RunRole(context.Background(), System{OS: "debian"}, Role{Name: "a", Tests: FlatTests("x")})

	assert.Equal(t, OutcomeFail, result.Outcome)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "no such file", result.Failures[0].Error)
}

// cancellingRunner cancels the run once the command named at has finished.
type cancellingRunner struct {
	inner  CommandRunner
	at     string
	cancel context.CancelFunc
	calls  []string
}

func (r *cancellingRunner) Run(ctx context.Context, shell, command string) CommandOutput {
	r.calls = append(r.calls, command)
	out := r.inner.Run(ctx, shell, command)
	if command == r.at {
		r.cancel()
	}
	return out
}

func TestRunRole_InterruptedStopsRemainingCommands(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := &cancellingRunner{inner: &fakeRunner{}, at: "first", cancel: cancel}
	reporter := &recordingReporter{}
	executor := NewExecutor(testDistros(t), runner, reporter)

	result := executor.RunRole(ctx, System{OS: "debian", Shell: "/bin/bash"},
		Role{Name: "a", Tests: FlatTests("first", "second", "third")})

	assert.Equal(t, OutcomeInterrupted, result.Outcome)
	assert.Equal(t, []string{"first"}, runner.calls)
	assert.Empty(t, result.Failures)
	assert.Equal(t, []string{"role:a", "result:interrupted"}, reporter.events)
}

func TestRunRole_InterruptedKeepsEarlierFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inner := &fakeRunner{failures: map[string]CommandOutput{
		"first": {ExitCode: 1, Stderr: []byte("first broke")},
	}}
	runner := &cancellingRunner{inner: inner, at: "second", cancel: cancel}
	executor := NewExecutor(testDistros(t), runner, &recordingReporter{})

	result := executor.RunRole(ctx, System{OS: "debian", Shell: "/bin/bash"},
		Role{Name: "a", Tests: FlatTests("first", "second", "third")})

	assert.Equal(t, OutcomeInterrupted, result.Outcome)
	assert.Equal(t, []string{"first", "second"}, runner.calls)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "first", result.Failures[0].Command)
}

func mockExecCommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.CommandContext(ctx, os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is a helper process for mocking exec.Command
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	// <shell> -c <command>
	if len(args) != 3 || args[1] != "-c" {
		fmt.Fprintf(os.Stderr, "unexpected invocation: %v\n", args)
		os.Exit(2)
	}

	switch args[2] {
	case "ok":
		fmt.Println("stdout is discarded")
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, "boom")
		os.Exit(3)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[2])
		os.Exit(127)
	}
}

func TestShellRunner(t *testing.T) {
	original := execCommandContext
	execCommandContext = mockExecCommandContext
	defer func() { execCommandContext = original }()

	runner := NewShellRunner()

	t.Run("success", func(t *testing.T) {
		out := runner.Run(context.Background(), "/bin/bash", "ok")
		assert.False(t, out.Failed())
		assert.Equal(t, 0, out.ExitCode)
		assert.Empty(t, out.Stderr)
	})

	t.Run("nonzero exit captures stderr", func(t *testing.T) {
		out := runner.Run(context.Background(), "/bin/bash", "fail")
		assert.True(t, out.Failed())
		assert.Equal(t, 3, out.ExitCode)
		assert.Equal(t, "boom", string(out.Stderr))
		assert.NoError(t, out.Err)
	})
}

func TestShellRunner_MissingShell(t *testing.T) {
	out := NewShellRunner().Run(context.Background(), "/nonexistent/shell", "true")

	assert.True(t, out.Failed())
	assert.Equal(t, -1, out.ExitCode)
	assert.Error(t, out.Err)
}

func TestShellRunner_RealShell(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	runner := NewShellRunner()

	out := runner.Run(context.Background(), sh, "echo hidden; echo visible >&2; exit 4")
	assert.Equal(t, 4, out.ExitCode)
	assert.Equal(t, "visible\n", string(out.Stderr))

	out = runner.Run(context.Background(), sh, "true")
	assert.False(t, out.Failed())
}
