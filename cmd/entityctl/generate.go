/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/suparena/kindstore/processor"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var opts processor.Options

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate typed kind code from schema files",
		Long: `Generate merges the given schema files in order and renders one Go file
declaring a record type and kind handle per kind, plus a DataStore with named
Add, GetAll, Get and Clear methods.

A kind declared by an earlier schema file cannot be redefined by a later one.

Example:
  entityctl generate --schema schema/movie.yaml --schema schema/song.yaml --out catalog_gen.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := processor.Run(opts)
			if err != nil {
				return err
			}
			if opts.Output == "" {
				_, err = cmd.OutOrStdout().Write(src)
			}
			return err
		},
	}

	cmd.Flags().StringArrayVar(&opts.SchemaPaths, "schema", nil, "schema file (repeatable, merged in order)")
	cmd.Flags().StringVar(&opts.Output, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name (default: from the schema files)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
