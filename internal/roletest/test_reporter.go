package roletest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"bootware/internal/formatting"
)

const (
	passedMessage = "Integration tests passed."
	failedMessage = "Integration tests failed."
)

// consoleReporter prints one progress line per role to out and failure
// details to errOut.
type consoleReporter struct {
	out        io.Writer
	errOut     io.Writer
	verbose    bool
	color      bool
	reportPath string
	config     RunConfiguration
}

// NewConsoleReporter creates the default reporter of the role loop.
func NewConsoleReporter(out, errOut io.Writer, verbose, color bool, reportPath string) Reporter {
	return &consoleReporter{
		out:        out,
		errOut:     errOut,
		verbose:    verbose,
		color:      color,
		reportPath: reportPath,
	}
}

func (r *consoleReporter) ReportStart(system System, config RunConfiguration, roles int) {
	r.config = config
	if !r.verbose {
		return
	}

	fmt.Fprintf(r.out, "Testing %d roles on %s/%s with %s\n", roles, system.OS, system.Arch, system.Shell)
	fmt.Fprintf(r.out, "  Catalog: %s\n", config.CatalogPath)
	fmt.Fprintf(r.out, "  Distro set: %s (%s)\n", config.Distros.Version, strings.Join(config.Distros.Names, ", "))
	fmt.Fprintf(r.out, "  Tags: %s\n", formatting.JoinOrDash(config.Allow))
	fmt.Fprintf(r.out, "  Skip: %s\n", formatting.JoinOrDash(config.Deny))
	fmt.Fprintln(r.out)
}

func (r *consoleReporter) ReportRoleStart(role Role) {
	fmt.Fprintf(r.out, "testing: %s", role.Name)
}

func (r *consoleReporter) ReportRoleResult(result RoleResult) {
	fmt.Fprintf(r.out, " -> %s\n", formatting.ColorizeStatus(string(result.Outcome), r.color))
	writeFailures(r.errOut, result.Failures)
}

func (r *consoleReporter) ReportSuiteResult(result SuiteResult) {
	if r.verbose {
		fmt.Fprintln(r.out)
		fmt.Fprint(r.out, r.summaryTable(result))
		fmt.Fprintf(r.out, "Passed: %d  Failed: %d  Skipped: %d  Duration: %v\n",
			result.Count(OutcomePass), result.Count(OutcomeFail), result.Count(OutcomeSkip), result.Duration)
	}

	writeFinalLine(r.out, r.errOut, result)

	if r.reportPath != "" {
		path, err := SaveDetailedReport(r.reportPath, result, r.config)
		if err != nil {
			fmt.Fprintf(r.errOut, "Failed to save detailed report: %v\n", err)
		} else {
			fmt.Fprintf(r.out, "Detailed report saved to: %s\n", path)
		}
	}
}

func (r *consoleReporter) summaryTable(result SuiteResult) string {
	ds := formatting.Dataset{
		Header: []string{"Role", "Outcome", "Commands", "Failures", "Duration"},
		Empty:  "No roles tested",
	}
	for _, role := range result.Results {
		ds.Rows = append(ds.Rows, []string{
			role.Role,
			formatting.ColorizeStatus(string(role.Outcome), r.color),
			fmt.Sprintf("%d", len(role.Commands)),
			fmt.Sprintf("%d", len(role.Failures)),
			role.Duration.Round(time.Millisecond).String(),
		})
	}

	out, err := formatting.NewFormatter(formatting.Options{Format: formatting.FormatTable, Color: r.color}).Format(ds)
	if err != nil {
		return ""
	}
	return out
}

// NewQuietReporter creates a reporter that only prints failing roles and
// the final line.
func NewQuietReporter(out, errOut io.Writer) Reporter {
	return &quietReporter{out: out, errOut: errOut}
}

type quietReporter struct {
	out    io.Writer
	errOut io.Writer
}

func (r *quietReporter) ReportStart(system System, config RunConfiguration, roles int) {}

func (r *quietReporter) ReportRoleStart(role Role) {}

func (r *quietReporter) ReportRoleResult(result RoleResult) {
	if result.Outcome != OutcomeFail {
		return
	}
	fmt.Fprintf(r.out, "testing: %s -> %s\n", result.Role, result.Outcome)
	writeFailures(r.errOut, result.Failures)
}

func (r *quietReporter) ReportSuiteResult(result SuiteResult) {
	writeFinalLine(r.out, r.errOut, result)
}

func writeFailures(w io.Writer, failures []CommandFailure) {
	for _, f := range failures {
		if f.Error != "" {
			fmt.Fprintf(w, "  %s: %s\n", f.Command, f.Error)
			continue
		}
		fmt.Fprintf(w, "  %s: exit status %d\n", f.Command, f.ExitCode)
		if stderr := strings.TrimSpace(f.Stderr); stderr != "" {
			fmt.Fprintln(w, formatting.IndentText(stderr, "    "))
		}
	}
}

func writeFinalLine(out, errOut io.Writer, result SuiteResult) {
	if result.Failed() {
		fmt.Fprintf(errOut, "\n%s\n", failedMessage)
		return
	}
	fmt.Fprintf(out, "\n%s\n", passedMessage)
}
