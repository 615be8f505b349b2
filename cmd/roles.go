package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"bootware/internal/cli"
	"bootware/internal/config"
	"bootware/internal/roletest"

	"github.com/spf13/cobra"
)

var (
	rolesFlags   cli.CommandFlags
	rolesShell   string
	rolesCatalog string
	rolesReport  string
	rolesQuiet   bool
	rolesVerbose bool
)

// nonLinuxSystems are OS names accepted besides the Linux distro set.
var nonLinuxSystems = []string{"freebsd", "macos", "windows"}

// rolesCmd represents the roles command
var rolesCmd = &cobra.Command{
	Use:   "roles <os>",
	Short: "Execute shell commands to test binaries installed from roles",
	Long: `The roles command loads the role catalog and tests every role against
the current system, in catalog order.

For each role the skip conditions are checked first. A role that is not
skipped runs its test commands through the test shell; every command runs
even when an earlier one fails. One line is printed per role:

  testing: <role> -> pass|fail|skip

The command exits with status 1 when any role failed.

Example usage:
  bootware roles debian                      # Test all roles on Debian
  bootware roles macos --tags bat,fd         # Test only bat and fd
  bootware roles fedora --skip docker        # Test everything except docker
  bootware roles alpine --verbose            # Add a summary table
  bootware roles ubuntu --report ./reports   # Save a JSON report`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeOSArg,
	RunE:              runRoles,
}

// completeOSArg offers the configured Linux distros and the other supported systems.
func completeOSArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := append([]string(nil), nonLinuxSystems...)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return names, cobra.ShellCompDirectiveNoFileComp
	}
	distros, err := roletest.ResolveDistroSet(cfg.LinuxDistros.Version, cfg.LinuxDistros.Names)
	if err == nil {
		names = append(distros.Names, names...)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeRoleFlag provides shell completion for role names from the catalog
func completeRoleFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveNoFileComp
		}
		path = cfg.Catalog
	}
	return roletest.LoadRoleNamesForCompletion(path), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(rolesCmd)

	cli.RegisterRoleFlags(rolesCmd, &rolesFlags)
	rolesCmd.Flags().StringVar(&rolesShell, "shell", roletest.DefaultShell(runtime.GOOS), "Test shell")
	rolesCmd.Flags().StringVar(&rolesCatalog, "catalog", "", "Role catalog file (default: catalog from configuration)")
	rolesCmd.Flags().StringVar(&rolesReport, "report", "", "Directory to save a detailed JSON report")
	rolesCmd.Flags().BoolVarP(&rolesQuiet, "quiet", "q", false, "Only print failing roles and the final result")
	rolesCmd.Flags().BoolVarP(&rolesVerbose, "verbose", "v", false, "Print configuration and a summary table")

	rolesCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	_ = rolesCmd.RegisterFlagCompletionFunc("skip", completeRoleFlag)
	_ = rolesCmd.RegisterFlagCompletionFunc("tags", completeRoleFlag)
}

func runRoles(cmd *cobra.Command, args []string) error {
	initLogging(rolesFlags.Debug)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	distros, err := roletest.ResolveDistroSet(cfg.LinuxDistros.Version, cfg.LinuxDistros.Names)
	if err != nil {
		return fmt.Errorf("invalid linux_distros configuration: %w", err)
	}

	runConfig := roletest.RunConfiguration{
		CatalogPath: cfg.Catalog,
		Allow:       cli.NormalizeList(rolesFlags.Tags),
		Deny:        cli.NormalizeList(rolesFlags.Skip),
		Distros:     distros,
		ReportPath:  rolesReport,
		Verbose:     rolesVerbose,
		Quiet:       rolesQuiet,
		Color:       colorFor(cmd.OutOrStdout()),
	}
	if rolesCatalog != "" {
		runConfig.CatalogPath = rolesCatalog
	}

	// The catalog is loaded before anything runs; a broken catalog tests nothing.
	roles, err := roletest.LoadCatalog(runConfig.CatalogPath)
	if err != nil {
		return err
	}
	roles = roletest.FilterRoles(roles, runConfig.Allow, runConfig.Deny)
	if len(roles) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatWarning("No roles left to test after filtering", colorFor(cmd.ErrOrStderr())))
	}

	framework, err := roletest.NewFramework(runConfig, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	system := roletest.System{
		Arch:  rolesFlags.Arch,
		OS:    args[0],
		Shell: rolesShell,
	}

	result, err := framework.Runner.Run(ctx, system, runConfig, roles)
	if err != nil {
		return fmt.Errorf("role tests interrupted: %w", err)
	}

	if result.Failed() {
		return &cli.TestsFailedError{Failed: result.Count(roletest.OutcomeFail)}
	}
	return nil
}
