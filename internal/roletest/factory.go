package roletest

import (
	"fmt"
	"io"
)

const (
	// DefaultCatalogPath is the role catalog location relative to the repository root
	DefaultCatalogPath = "data/roles.json"
	// DefaultDistroSetVersion selects the distro set used when none is configured
	DefaultDistroSetVersion = "v2"
)

var defaultShells = map[string]string{
	"darwin":  "/bin/bash",
	"freebsd": "/usr/local/bin/bash",
	"linux":   "/bin/bash",
	"windows": "C:/Windows/System32/WindowsPowerShell/v1.0/powershell.exe",
}

// DefaultShell returns the test shell for a Go operating system name.
func DefaultShell(goos string) string {
	if shell, ok := defaultShells[goos]; ok {
		return shell
	}
	return "/bin/sh"
}

// DefaultRunConfiguration returns a default run configuration
func DefaultRunConfiguration() RunConfiguration {
	distros, _ := ResolveDistroSet(DefaultDistroSetVersion, nil)
	return RunConfiguration{
		CatalogPath: DefaultCatalogPath,
		Distros:     distros,
	}
}

// ValidateConfiguration validates a run configuration
func ValidateConfiguration(config RunConfiguration) error {
	if config.CatalogPath == "" {
		return fmt.Errorf("catalog path must not be empty")
	}
	if len(config.Distros.Names) == 0 {
		return fmt.Errorf("linux distro set must not be empty")
	}
	if config.Quiet && config.Verbose {
		return fmt.Errorf("quiet and verbose are mutually exclusive")
	}
	return nil
}

// Framework holds all components needed for a role test run
type Framework struct {
	Runner   *Runner
	Executor *Executor
	Reporter Reporter
}

// NewFramework creates a framework that runs commands through real shells.
func NewFramework(config RunConfiguration, out, errOut io.Writer) (*Framework, error) {
	return NewFrameworkWithRunner(config, NewShellRunner(), out, errOut)
}

// NewFrameworkWithRunner creates a framework around a custom CommandRunner.
func NewFrameworkWithRunner(config RunConfiguration, commandRunner CommandRunner, out, errOut io.Writer) (*Framework, error) {
	if err := ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}

	var reporter Reporter
	if config.Quiet {
		reporter = NewQuietReporter(out, errOut)
	} else {
		reporter = NewConsoleReporter(out, errOut, config.Verbose, config.Color, config.ReportPath)
	}

	executor := NewExecutor(config.Distros, commandRunner, reporter)

	return &Framework{
		Runner:   NewRunner(executor, reporter),
		Executor: executor,
		Reporter: reporter,
	}, nil
}
