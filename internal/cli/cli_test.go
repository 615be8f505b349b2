package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoleFlags(t *testing.T) {
	var flags CommandFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	RegisterRoleFlags(cmd, &flags)

	cmd.SetArgs([]string{"--skip", "docker,podman", "-t", "bat", "-t", "fd", "--debug"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, runtime.GOARCH, flags.Arch)
	assert.Equal(t, []string{"docker", "podman"}, flags.Skip)
	assert.Equal(t, []string{"bat", "fd"}, flags.Tags)
	assert.True(t, flags.Debug)
}

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeList([]string{" a", "", "b ", "  "}))
	assert.Equal(t, []string{}, NormalizeList(nil))
}

func TestIsReported(t *testing.T) {
	err := fmt.Errorf("run: %w", &TestsFailedError{Failed: 2})

	assert.True(t, IsReported(err))
	assert.Equal(t, "run: 2 roles failed", err.Error())
	assert.False(t, IsReported(errors.New("boom")))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "Error: boom", FormatError(errors.New("boom"), false))
	assert.Equal(t, "careful", FormatWarning("careful", false))
}

func TestColorEnabled_NoColor(t *testing.T) {
	original := lookupEnv
	defer func() { lookupEnv = original }()

	lookupEnv = func(key string) (string, bool) {
		if key == "NO_COLOR" {
			return "1", true
		}
		return "", false
	}

	assert.False(t, ColorEnabled(os.Stdout))
	assert.False(t, IsTerminal(nil))
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer

	called := false
	err := Progress(&buf, false, "Detecting", func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, buf.String())

	want := errors.New("no runtime")
	err = Progress(&buf, true, "Detecting", func() error { return want })
	assert.ErrorIs(t, err, want)
}
