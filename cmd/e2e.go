package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bootware/internal/cli"
	"bootware/internal/config"
	"bootware/internal/containerizer"
	"bootware/internal/imagebuild"

	"github.com/spf13/cobra"
)

var (
	e2eFlags   cli.CommandFlags
	e2eCache   bool
	e2eDistros []string
	e2eRuntime string
	e2eDryRun  bool
)

// detectRuntime is a variable to allow mocking in tests
var detectRuntime = func(ctx context.Context, candidates []string) (string, error) {
	return containerizer.DetectRuntime(ctx, candidates, containerizer.Probe)
}

// e2eCmd represents the e2e command
var e2eCmd = &cobra.Command{
	Use:   "e2e",
	Short: "Run all container end to end tests for an architecture",
	Long: `The e2e command builds one container image per Linux distro. Each build
installs bootware with the selected roles and runs the role tests inside the
image, so a successful build is a passing end to end test.

The container runtime is detected once (podman first, then docker) unless
--runtime is given. Both candidates are probed with "--version"; when neither
responds the command fails before any build instead of assuming docker.
Builds run one after another and the first failing build stops the run.

Example usage:
  bootware e2e                               # Build every configured distro
  bootware e2e --distro debian,fedora        # Build only Debian and Fedora
  bootware e2e --arch arm64 --cache          # Build arm64 images with layer cache
  bootware e2e --runtime docker --dry-run    # Print the docker build commands`,
	Args: cobra.NoArgs,
	RunE: runE2E,
}

func init() {
	rootCmd.AddCommand(e2eCmd)

	cli.RegisterRoleFlags(e2eCmd, &e2eFlags)
	e2eCmd.Flags().BoolVarP(&e2eCache, "cache", "c", false, "Use container cache")
	e2eCmd.Flags().StringSliceVarP(&e2eDistros, "distro", "d", nil, "Linux distributions list (default: distros from configuration)")
	e2eCmd.Flags().StringVar(&e2eRuntime, "runtime", "", "Container runtime to use instead of detection (podman, docker)")
	e2eCmd.Flags().BoolVar(&e2eDryRun, "dry-run", false, "Print the build commands without running them")

	_ = e2eCmd.RegisterFlagCompletionFunc("runtime", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return containerizer.DefaultRuntimeCandidates, cobra.ShellCompDirectiveNoFileComp
	})
	_ = e2eCmd.RegisterFlagCompletionFunc("skip", completeRoleFlag)
	_ = e2eCmd.RegisterFlagCompletionFunc("tags", completeRoleFlag)
}

func runE2E(cmd *cobra.Command, args []string) error {
	initLogging(e2eFlags.Debug)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runtimeName := e2eRuntime
	if runtimeName == "" {
		err = cli.Progress(cmd.ErrOrStderr(), colorFor(cmd.ErrOrStderr()), "Detecting container runtime...", func() error {
			runtimeName, err = detectRuntime(ctx, cfg.E2E.Runtimes)
			return err
		})
		if err != nil {
			return err
		}
	}

	runtime, err := containerizer.NewContainerRuntime(runtimeName, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	builder, err := imagebuild.NewBuilder(runtime, imagebuild.Options{
		BuildFile: cfg.E2E.BuildFile,
		ImageTag:  cfg.E2E.ImageTag,
		Context:   cfg.E2E.Context,
		Vars:      cfg.E2E.Vars,
	}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	targets := imagebuild.NewTargets(
		firstNonEmpty(cli.NormalizeList(e2eDistros), cfg.E2E.Distros),
		e2eFlags.Arch,
		e2eCache,
		firstNonEmpty(cli.NormalizeList(e2eFlags.Skip), cfg.E2E.Skip),
		firstNonEmpty(cli.NormalizeList(e2eFlags.Tags), cfg.E2E.Tags),
	)
	if len(targets) == 0 {
		return fmt.Errorf("no distros to build")
	}

	if e2eDryRun {
		for _, target := range targets {
			spec, err := builder.Spec(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", runtime.Name(), strings.Join(containerizer.BuildCommandArgs(spec), " "))
		}
		return nil
	}

	return builder.Build(ctx, targets)
}

func firstNonEmpty(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
