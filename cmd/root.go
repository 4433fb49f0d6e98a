package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the printcode command tree. Running it without a
// subcommand collects files using the resolved configuration.
func NewRootCmd() *cobra.Command {
	opts := &collectOptions{}

	rootCmd := &cobra.Command{
		Use:   "printcode",
		Short: "printcode combines source files from one directory into a single file",
		Long: `printcode concatenates every .py, .html, .js and .css file found directly
inside a directory into one text file, prefixing each with a comment line
naming its source path. Subdirectories are not traversed.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.resolve,
		RunE:              opts.run,
	}

	opts.bindFlags(rootCmd)
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
