package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bootware/internal/cli"
	"bootware/internal/config"
	"bootware/pkg/logging"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a failed role, a failed build or a startup error.
	ExitCodeError = 1
)

// configPath is the directory holding config.yaml, shared by all subcommands.
var configPath string

// rootCmd represents the base command for the bootware test tooling.
var rootCmd = &cobra.Command{
	Use:   "bootware",
	Short: "Test bootware roles on the current system and in containers",
	Long: `bootware runs the integration and end to end tests of the bootware
roles.

The roles command executes the shell test commands of every role from the
role catalog against the current system. The e2e command builds one
container image per Linux distro with the selected roles installed.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	// Errors are printed by Execute so that already reported test failures are not repeated.
	SilenceErrors: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "bootware version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		reportError(os.Stderr, err, cli.ColorEnabled(os.Stderr))
		os.Exit(getExitCode(err))
	}
}

// reportError prints err unless it was already presented to the user.
// Configuration errors are printed with the file and failure kind.
func reportError(w io.Writer, err error, color bool) {
	if cli.IsReported(err) {
		return
	}

	var configErr *config.ConfigurationError
	if errors.As(err, &configErr) {
		msg := configErr.DetailedError()
		if color {
			msg = text.FgRed.Sprint(msg)
		}
		fmt.Fprintln(w, msg)
		return
	}

	fmt.Fprintln(w, cli.FormatError(err, color))
}

// getExitCode determines the exit code for an error returned by a command.
// Role failures, build failures and startup errors all map to ExitCodeError.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeError
}

// defaultConfigPath returns ~/.config/bootware, or a relative fallback when
// the home directory is unknown.
func defaultConfigPath() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		return filepath.Join(".config", "bootware")
	}
	return path
}

// initLogging routes log output to stderr. Debug mode lowers the level so
// command lines and probe results become visible.
func initLogging(debug bool) {
	level := logging.LevelWarn
	if debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)
}

// commandContext returns the command's context, which is nil when RunE is
// called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// colorFor enables colors only for terminal file writers.
func colorFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && cli.ColorEnabled(f)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", defaultConfigPath(), "Configuration directory")
}
