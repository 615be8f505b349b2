package cmd

import (
	"context"
	"fmt"
	"testing"

	"bootware/internal/cli"
	"bootware/internal/containerizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withE2EFlags sets the e2e command flags for one test.
func withE2EFlags(t *testing.T) {
	t.Helper()
	oldFlags, oldCache, oldDistros := e2eFlags, e2eCache, e2eDistros
	oldRuntime, oldDryRun, oldConfigPath, oldDetect := e2eRuntime, e2eDryRun, configPath, detectRuntime
	t.Cleanup(func() {
		e2eFlags, e2eCache, e2eDistros = oldFlags, oldCache, oldDistros
		e2eRuntime, e2eDryRun, configPath, detectRuntime = oldRuntime, oldDryRun, oldConfigPath, oldDetect
	})

	e2eFlags = cli.CommandFlags{Arch: "arm64"}
	e2eCache = false
	e2eDistros = nil
	e2eRuntime = ""
	e2eDryRun = false
	configPath = t.TempDir()
}

func TestRunE2E_DryRun(t *testing.T) {
	withE2EFlags(t)
	e2eDryRun = true
	e2eDistros = []string{"debian", "fedora"}

	var probed []string
	detectRuntime = func(ctx context.Context, candidates []string) (string, error) {
		probed = append(probed, candidates...)
		return "podman", nil
	}

	c, out, _ := newTestCommand()
	require.NoError(t, runE2E(c, nil))

	assert.Equal(t, []string{"podman", "docker"}, probed)
	assert.Equal(t,
		"podman build --no-cache --file test/e2e/debian.dockerfile --tag docker.io/scruffaluff/bootware:debian"+
			" --platform linux/arm64 --build-arg skip=none --build-arg tags=desktop,extras --build-arg test=true .\n"+
			"podman build --no-cache --file test/e2e/fedora.dockerfile --tag docker.io/scruffaluff/bootware:fedora"+
			" --platform linux/arm64 --build-arg skip=none --build-arg tags=desktop,extras --build-arg test=true .\n",
		out.String())
}

func TestRunE2E_RuntimeOverrideSkipsDetection(t *testing.T) {
	withE2EFlags(t)
	e2eDryRun = true
	e2eCache = true
	e2eRuntime = "docker"
	e2eDistros = []string{"alpine"}
	e2eFlags.Skip = []string{"docker"}
	e2eFlags.Tags = []string{"bat", "fd"}

	detectRuntime = func(ctx context.Context, candidates []string) (string, error) {
		t.Fatal("runtime detection must not run when --runtime is given")
		return "", nil
	}

	c, out, _ := newTestCommand()
	require.NoError(t, runE2E(c, nil))

	assert.Equal(t, "docker build --file test/e2e/alpine.dockerfile --tag docker.io/scruffaluff/bootware:alpine"+
		" --platform linux/arm64 --build-arg skip=docker --build-arg tags=bat,fd --build-arg test=true .\n", out.String())
}

func TestRunE2E_NoRuntime(t *testing.T) {
	withE2EFlags(t)
	detectRuntime = func(ctx context.Context, candidates []string) (string, error) {
		return "", fmt.Errorf("%w (tried: podman, docker)", containerizer.ErrNoRuntime)
	}

	c, out, _ := newTestCommand()
	err := runE2E(c, nil)

	assert.ErrorIs(t, err, containerizer.ErrNoRuntime)
	assert.Empty(t, out.String())
}

func TestRunE2E_UnsupportedRuntime(t *testing.T) {
	withE2EFlags(t)
	e2eRuntime = "lxc"

	c, _, _ := newTestCommand()
	assert.Error(t, runE2E(c, nil))
}

func TestE2ECommandHelp(t *testing.T) {
	assert.Contains(t, e2eCmd.Long, "podman first, then docker")
	assert.Contains(t, e2eCmd.Long, "fails before any build instead of assuming docker")
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a"}, firstNonEmpty(nil, []string{}, []string{"a"}, []string{"b"}))
	assert.Nil(t, firstNonEmpty(nil, nil))
}
