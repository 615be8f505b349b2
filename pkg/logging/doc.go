// Package logging provides the structured logger used across bootware.
//
// It is a thin layer over the standard slog package: every entry carries a
// subsystem attribute so that output from the role loop, the image builder
// and the configuration loader can be told apart.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Catalog", "Loaded %d roles from %s", len(roles), path)
//	logging.Debug("Executor", "Running %q through %s", command, shell)
//	logging.Warn("Config", "Unknown distro set %s, using defaults", name)
//	logging.Error("Builder", err, "Build for %s failed", distro)
//
// # Output Streams
//
// Logs go to the writer handed to InitForCLI, normally stderr. The user facing
// lines of the role loop and the e2e driver (progress markers, pass/fail lines,
// aggregate result) are written by reporters to stdout and never pass through
// this package, so raising the log level never changes that contract.
//
// # Levels
//
//   - Debug: command lines, probe results, template rendering
//   - Info: catalog and configuration loading
//   - Warn: recoverable oddities such as an empty filtered catalog
//   - Error: failures that end a run
//
// Before InitForCLI is called all entries below Warn are dropped.
package logging
