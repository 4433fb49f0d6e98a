// File: cmd/version.go
package cmd

import (
	"fmt"

	"printcode/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd displays the current version of printcode.
// The --short flag prints the version number alone.
func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of printcode",
		Long:  `Display the current version information of the printcode CLI tool.`,
		Args:  cobra.NoArgs,
		// Version output needs no configuration or logger.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}

	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return versionCmd
}
