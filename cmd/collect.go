// File: cmd/collect.go
package cmd

import (
	"fmt"

	"printcode/pkg/collect"
	"printcode/pkg/config"
	"printcode/pkg/logging"
	"printcode/pkg/version"

	"github.com/spf13/cobra"
)

// collectOptions carries flag values and the configuration resolved from them.
type collectOptions struct {
	configPath string
	directory  string
	output     string
	extensions []string
	debug      bool

	cfg *config.Config
}

func (o *collectOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "Path to a YAML config file (env "+config.EnvConfig+")")
	flags.BoolVar(&o.debug, "debug", false, "Enable debug logging")

	local := cmd.Flags()
	local.StringVarP(&o.directory, "dir", "d", "", "Directory to scan (default: directory of the printcode binary)")
	local.StringVarP(&o.output, "output", "o", config.DefaultOutput, "Combined output file")
	local.StringSliceVarP(&o.extensions, "ext", "e", config.DefaultExtensions(), "File extensions to include")
}

// resolve layers changed flags over the loaded configuration and sets up logging.
func (o *collectOptions) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if flagChanged(cmd, "dir") {
		cfg.Directory = o.directory
	}
	if flagChanged(cmd, "output") {
		cfg.Output = o.output
	}
	if flagChanged(cmd, "ext") {
		cfg.Extensions = o.extensions
	}
	if flagChanged(cmd, "debug") {
		cfg.Debug = o.debug
	}

	if err := cfg.Normalize(); err != nil {
		return err
	}
	o.cfg = cfg

	if err := logging.Setup(cfg.Debug, "printcode", version.Get().Version); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (o *collectOptions) run(cmd *cobra.Command, _ []string) error {
	res, err := collect.Run(collect.Arguments{
		Directory:  o.cfg.Directory,
		Output:     o.cfg.Output,
		Extensions: o.cfg.Extensions,
	}, logging.Get())
	if err != nil {
		return fmt.Errorf("collect %s failed: %w", o.cfg.Directory, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "All specified files in the same directory have been combined into %s\n", res.Output)
	return nil
}

// flagChanged looks the flag up in both the local and inherited sets.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
