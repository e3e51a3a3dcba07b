/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/suparena/kindstore"
	"github.com/suparena/kindstore/config"
	"github.com/suparena/kindstore/logging"
)

// cli holds the state shared by every subcommand.
type cli struct {
	configFile string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "entityctl",
		Short:         "Generate and seed typed kind stores",
		Version:       kindstore.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configFile)
			if err != nil {
				return err
			}
			if c.logLevel != "" {
				cfg.Log.Level = c.logLevel
			}
			if err := logging.InitializeLogging(cfg.Log.Level); err != nil {
				return err
			}
			logging.SetOutput(cmd.ErrOrStderr())
			c.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: none, ENTITYCTL_* env and .env only)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (overrides log.level)")

	root.AddCommand(newGenerateCmd(c))
	root.AddCommand(newSeedCmd(c))
	root.AddCommand(newVersionCmd())
	return root
}
