// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cspath/internal/config"
	"github.com/katalvlaran/cspath/internal/logging"
)

// app carries state shared by the subcommands once the root pre-run has
// loaded the configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
	log logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Noop()}

	root := &cobra.Command{
		Use:           "cspath",
		Short:         "Cheapest path from node 0 to node n-1 under a strict time limit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(a.newSolveCmd(), a.newServeCmd(), a.newGenCmd(), a.newConfigCmd())

	return root
}

// setup loads the configuration, applies the logging flags and builds the
// logger. Logs go to the command's stderr; stdout carries answers.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	a.cfg = cfg
	a.log = logging.New(logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
		Output:    cmd.ErrOrStderr(),
	})

	return nil
}
