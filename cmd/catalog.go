package cmd

import (
	"fmt"
	"sort"
	"strings"

	"bootware/internal/cli"
	"bootware/internal/config"
	"bootware/internal/formatting"
	"bootware/internal/roletest"

	"github.com/spf13/cobra"
)

var (
	catalogFlags   cli.CommandFlags
	catalogPath    string
	catalogOutput  string
	catalogSystem  string
	catalogColored bool
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the roles of the role catalog",
	Long: `The catalog command prints the roles that the roles command would test
after applying --tags and --skip, together with their test commands and skip
conditions.

With --os the commands selected for that system are shown and roles that
would be skipped are marked.

Example usage:
  bootware catalog                           # Table of all roles
  bootware catalog --tags bat,fd -o json     # Selected roles as JSON
  bootware catalog --os macos                # What would run on macOS`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	cli.RegisterRoleFlags(catalogCmd, &catalogFlags)
	catalogCmd.Flags().StringVar(&catalogPath, "catalog", "", "Role catalog file (default: catalog from configuration)")
	catalogCmd.Flags().StringVarP(&catalogOutput, "output", "o", "table", "Output format (table, console, json, yaml)")
	catalogCmd.Flags().StringVar(&catalogSystem, "os", "", "Show the commands selected for this operating system")
	catalogCmd.Flags().BoolVar(&catalogColored, "color", false, "Force colored table headers")

	_ = catalogCmd.RegisterFlagCompletionFunc("skip", completeRoleFlag)
	_ = catalogCmd.RegisterFlagCompletionFunc("tags", completeRoleFlag)
	_ = catalogCmd.RegisterFlagCompletionFunc("os", completeOSArg)
	_ = catalogCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "console", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// catalogEntry is the structured form of one listed role.
type catalogEntry struct {
	roletest.Role `json:",inline" yaml:",inline"`
	Selected      []string `json:"selected,omitempty" yaml:"selected,omitempty"`
	Skipped       bool     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

func runCatalog(cmd *cobra.Command, args []string) error {
	initLogging(catalogFlags.Debug)

	format, err := formatting.ParseOutputFormat(catalogOutput)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	distros, err := roletest.ResolveDistroSet(cfg.LinuxDistros.Version, cfg.LinuxDistros.Names)
	if err != nil {
		return fmt.Errorf("invalid linux_distros configuration: %w", err)
	}

	path := cfg.Catalog
	if catalogPath != "" {
		path = catalogPath
	}
	roles, err := roletest.LoadCatalog(path)
	if err != nil {
		return err
	}
	roles = roletest.FilterRoles(roles, cli.NormalizeList(catalogFlags.Tags), cli.NormalizeList(catalogFlags.Skip))

	ds := buildCatalogDataset(roles, distros)

	formatter := formatting.NewFormatter(formatting.Options{
		Format: format,
		Color:  catalogColored || colorFor(cmd.OutOrStdout()),
	})
	out, err := formatter.Format(ds)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func buildCatalogDataset(roles []roletest.Role, distros roletest.DistroSet) formatting.Dataset {
	ds := formatting.Dataset{
		Header: []string{"Role", "Tests", "Skip"},
		Empty:  "No roles match the given filters",
	}

	var (
		matcher  *roletest.Matcher
		selector *roletest.Selector
		system   roletest.System
	)
	if catalogSystem != "" {
		matcher = roletest.NewMatcher(distros)
		selector = roletest.NewSelector(distros)
		system = roletest.System{Arch: catalogFlags.Arch, OS: catalogSystem}
		ds.Header = []string{"Role", "Commands", "Outcome"}
	}

	entries := make([]catalogEntry, 0, len(roles))
	for _, role := range roles {
		entry := catalogEntry{Role: role}

		if selector == nil {
			ds.Rows = append(ds.Rows, []string{role.Name, describeTests(role.Tests), describeSkip(role.Skip)})
			entries = append(entries, entry)
			continue
		}

		entry.Skipped = matcher.ShouldSkip(system, role.Skip) || role.Tests.Kind() == roletest.TestSetNone
		status := "run"
		if entry.Skipped {
			status = "skip"
		} else {
			entry.Selected = selector.SelectCommands(role, system)
		}
		ds.Rows = append(ds.Rows, []string{
			role.Name,
			formatting.Truncate(formatting.JoinOrDash(entry.Selected), 60),
			status,
		})
		entries = append(entries, entry)
	}

	ds.Data = entries
	return ds
}

func describeTests(tests roletest.TestSet) string {
	switch tests.Kind() {
	case roletest.TestSetFlat:
		return fmt.Sprintf("%d commands", len(tests.Flat()))
	case roletest.TestSetByOS:
		return "by os: " + strings.Join(tests.Keys(), ", ")
	default:
		return "-"
	}
}

func describeSkip(conditions []roletest.SkipCondition) string {
	parts := make([]string, 0, len(conditions))
	for _, condition := range conditions {
		keys := make([]string, 0, len(condition))
		for key := range condition {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, key+"="+condition[key])
		}
		if len(pairs) == 0 {
			pairs = append(pairs, "always")
		}
		parts = append(parts, strings.Join(pairs, " "))
	}
	return formatting.JoinOrDash(parts)
}
