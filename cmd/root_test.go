package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"bootware/internal/cli"
	"bootware/internal/config"
	"bootware/internal/imagebuild"
	"bootware/internal/roletest"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if GetVersion() != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, GetVersion())
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "bootware" {
		t.Errorf("Expected Use to be 'bootware', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}

	if rootCmd.PersistentFlags().Lookup("config-path") == nil {
		t.Error("Expected persistent --config-path flag")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "bootware version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	if err := testCmd.Execute(); err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	if got, want := buf.String(), "bootware version 1.0.0\n"; got != want {
		t.Errorf("Expected version output %q, got %q", want, got)
	}
}

func TestSubcommands(t *testing.T) {
	expectedCommands := []string{"version", "roles", "e2e", "catalog"}
	foundCommands := make(map[string]bool)

	for _, cmd := range rootCmd.Commands() {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitCodeSuccess},
		{"plain error", errors.New("boom"), ExitCodeError},
		{"role failures", fmt.Errorf("run: %w", &cli.TestsFailedError{Failed: 1}), ExitCodeError},
		{"build failure", &imagebuild.BuildError{Distro: "debian", Runtime: "podman", Err: errors.New("exit status 1")}, ExitCodeError},
		{"catalog error", &roletest.CatalogLoadError{Path: "roles.json", Reason: "cannot read file"}, ExitCodeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getExitCode(tt.err); got != tt.want {
				t.Errorf("getExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	if !strings.HasSuffix(defaultConfigPath(), "bootware") {
		t.Errorf("Expected config path to end in bootware, got %s", defaultConfigPath())
	}
}

func TestColorFor(t *testing.T) {
	if colorFor(&bytes.Buffer{}) {
		t.Error("Expected no color for non file writers")
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
		{
			name: "already reported",
			err:  &cli.TestsFailedError{Failed: 2},
			want: "",
		},
		{
			name: "configuration error",
			err: fmt.Errorf("load: %w", &config.ConfigurationError{
				FilePath:  "/home/tester/.config/bootware/config.yaml",
				ErrorType: "parse",
				Message:   "malformed YAML",
				Details:   "line 2: did not find expected key",
			}),
			want: "Configuration Error: malformed YAML\n" +
				"  File: /home/tester/.config/bootware/config.yaml\n" +
				"  Type: parse\n" +
				"  Details: line 2: did not find expected key\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err, false)
			if got := buf.String(); got != tt.want {
				t.Errorf("reportError() wrote %q, want %q", got, tt.want)
			}
		})
	}
}
