package cli

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// CommandFlags holds the role selection flags shared by the roles and e2e
// commands.
type CommandFlags struct {
	// Arch is the system architecture, for example amd64 or arm64
	Arch string
	// Skip lists roles to leave out
	Skip []string
	// Tags lists roles to keep
	Tags []string
	// Debug enables debug logging
	Debug bool
}

// RegisterRoleFlags registers the shared flags on cmd.
//
// The registered flags are:
//   - --arch/-a: System architecture, default: the running binary's GOARCH
//   - --skip/-s: Roles to skip (comma separated or repeated)
//   - --tags/-t: Roles to test (comma separated or repeated)
//   - --debug: Enable debug logging
func RegisterRoleFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.Flags().StringVarP(&flags.Arch, "arch", "a", runtime.GOARCH, "System architecture")
	cmd.Flags().StringSliceVarP(&flags.Skip, "skip", "s", nil, "Roles to skip")
	cmd.Flags().StringSliceVarP(&flags.Tags, "tags", "t", nil, "Roles to test")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
}

// NormalizeList trims entries and drops empty ones.
func NormalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
