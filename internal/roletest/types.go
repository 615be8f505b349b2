package roletest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// RoleOutcome is the result of testing a single role.
type RoleOutcome string

const (
	// OutcomePass indicates every selected command exited with status zero
	OutcomePass RoleOutcome = "pass"
	// OutcomeFail indicates at least one selected command failed
	OutcomeFail RoleOutcome = "fail"
	// OutcomeSkip indicates the role does not apply to the system
	OutcomeSkip RoleOutcome = "skip"
	// OutcomeInterrupted indicates the run was cancelled while the role was
	// being tested. Commands after the cancellation were never started.
	OutcomeInterrupted RoleOutcome = "interrupted"
)

// System describes the machine the role tests run against.
// It is fixed for the duration of a run.
type System struct {
	Arch  string `json:"arch"`
	OS    string `json:"os"`
	Shell string `json:"shell"`
}

// Attribute returns the system value a skip condition key refers to.
// Unknown keys yield "" and never match.
func (s System) Attribute(key string) (string, bool) {
	switch key {
	case "arch":
		return s.Arch, true
	case "os":
		return s.OS, true
	default:
		return "", false
	}
}

// SkipCondition maps attribute names to expected values. Absent keys match
// any value.
type SkipCondition map[string]string

// malformedKey marks a condition entry whose value was not a string. It is
// not a system attribute, so the condition can never match.
const malformedKey = "!malformed"

// UnmarshalJSON decodes a condition, keeping non-string values as a
// non-matching entry instead of failing the whole catalog.
func (c *SkipCondition) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == nil {
		*c = SkipCondition{malformedKey: "null"}
		return nil
	}

	out := make(SkipCondition, len(raw))
	for key, value := range raw {
		str, ok := value.(string)
		if !ok {
			out[malformedKey] = fmt.Sprintf("%s=%v", key, value)
			continue
		}
		out[key] = str
	}
	*c = out
	return nil
}

// TestSetKind identifies which variant a TestSet holds.
type TestSetKind int

const (
	// TestSetNone means the role declares no tests
	TestSetNone TestSetKind = iota
	// TestSetFlat is a single command list used on every system
	TestSetFlat
	// TestSetByOS maps OS names (plus "linux" and "default") to command lists
	TestSetByOS
)

// TestSet is the tests field of a role: either a flat command list or a
// mapping from OS name to command list.
type TestSet struct {
	kind TestSetKind
	flat []string
	byOS map[string][]string
}

// FlatTests builds a TestSet that runs the same commands on every system.
func FlatTests(commands ...string) TestSet {
	return TestSet{kind: TestSetFlat, flat: commands}
}

// TestsByOS builds a TestSet keyed by OS name.
func TestsByOS(commands map[string][]string) TestSet {
	return TestSet{kind: TestSetByOS, byOS: commands}
}

// Kind returns the variant held by the set.
func (t TestSet) Kind() TestSetKind {
	return t.kind
}

// Flat returns the flat command list. It is nil unless Kind is TestSetFlat.
func (t TestSet) Flat() []string {
	return t.flat
}

// ByOS returns the commands for key and whether the key is present.
func (t TestSet) ByOS(key string) ([]string, bool) {
	commands, ok := t.byOS[key]
	return commands, ok
}

// Keys returns the OS keys of a ByOS set in sorted order.
func (t TestSet) Keys() []string {
	keys := make([]string, 0, len(t.byOS))
	for key := range t.byOS {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// UnmarshalJSON resolves the dynamic shape of the tests field once.
func (t *TestSet) UnmarshalJSON(data []byte) error {
	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.(type) {
	case nil:
		*t = TestSet{}
	case []interface{}:
		var flat []string
		if err := json.Unmarshal(data, &flat); err != nil {
			return fmt.Errorf("tests list must contain only strings: %w", err)
		}
		*t = FlatTests(flat...)
	case map[string]interface{}:
		var byOS map[string][]string
		if err := json.Unmarshal(data, &byOS); err != nil {
			return fmt.Errorf("tests mapping must map OS names to string lists: %w", err)
		}
		*t = TestsByOS(byOS)
	default:
		return fmt.Errorf("tests must be a list of commands or a mapping of OS names to commands")
	}
	return nil
}

// MarshalJSON writes the set back in its catalog shape.
func (t TestSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value())
}

// MarshalYAML writes the set back in its catalog shape.
func (t TestSet) MarshalYAML() (interface{}, error) {
	return t.value(), nil
}

func (t TestSet) value() interface{} {
	switch t.kind {
	case TestSetFlat:
		return t.flat
	case TestSetByOS:
		return t.byOS
	default:
		return nil
	}
}

// Role is a named unit of installable software and its test commands.
type Role struct {
	Name  string          `json:"name" yaml:"name"`
	Skip  []SkipCondition `json:"skip,omitempty" yaml:"skip,omitempty"`
	Tests TestSet         `json:"tests" yaml:"tests"`
}

// CommandFailure records one command that did not exit with status zero.
type CommandFailure struct {
	Command  string `json:"command"`
	ExitCode int    `json:"exit_code"`
	Stderr   string `json:"stderr,omitempty"`
	// Error is set when the command could not be started at all.
	Error string `json:"error,omitempty"`
}

// RoleResult is the immutable outcome of testing one role.
type RoleResult struct {
	Role      string           `json:"role"`
	Outcome   RoleOutcome      `json:"outcome"`
	Commands  []string         `json:"commands,omitempty"`
	Failures  []CommandFailure `json:"failures,omitempty"`
	StartTime time.Time        `json:"start_time"`
	EndTime   time.Time        `json:"end_time"`
	Duration  time.Duration    `json:"duration"`
}

// SuiteResult is the ordered list of role results for one run.
type SuiteResult struct {
	RunID     string        `json:"run_id"`
	System    System        `json:"system"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	Results   []RoleResult  `json:"results"`
}

// Failed reports whether any role in the suite failed.
func (s SuiteResult) Failed() bool {
	return AnyFailed(s.Results)
}

// Count returns the number of roles with the given outcome.
func (s SuiteResult) Count(outcome RoleOutcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == outcome {
			n++
		}
	}
	return n
}

// AnyFailed folds an ordered list of role results into the aggregate
// failure flag. Skipped roles never count as failures.
func AnyFailed(results []RoleResult) bool {
	for _, r := range results {
		if r.Outcome == OutcomeFail {
			return true
		}
	}
	return false
}

// RunConfiguration holds the inputs of one role test run.
type RunConfiguration struct {
	// CatalogPath is the role catalog file
	CatalogPath string `json:"catalog_path"`
	// Allow keeps only the named roles when non-empty
	Allow []string `json:"allow,omitempty"`
	// Deny removes the named roles, applied after Allow
	Deny []string `json:"deny,omitempty"`
	// Distros is the Linux distro set used by skip conditions and test selection
	Distros DistroSet `json:"distros"`
	// ReportPath is a directory for the detailed JSON report
	ReportPath string `json:"report_path,omitempty"`
	// Verbose adds a summary table to the output
	Verbose bool `json:"verbose"`
	// Quiet prints only failures and the final line
	Quiet bool `json:"quiet"`
	// Color enables colored status words
	Color bool `json:"color"`
}

// CommandRunner runs a single test command through a shell.
type CommandRunner interface {
	Run(ctx context.Context, shell, command string) CommandOutput
}

// Reporter receives progress and results of a role test run.
type Reporter interface {
	// ReportStart is called once before the first role
	ReportStart(system System, config RunConfiguration, roles int)
	// ReportRoleStart is called before a role is evaluated
	ReportRoleStart(role Role)
	// ReportRoleResult is called once a role has an outcome
	ReportRoleResult(result RoleResult)
	// ReportSuiteResult is called after the last role
	ReportSuiteResult(result SuiteResult)
}
