/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"fmt"
	"os"

	"github.com/suparena/kindstore/logging"
)

var log = logging.GetLogger("processor")

// Options configures a generator run.
type Options struct {
	// SchemaPaths are merged in order.
	SchemaPaths []string
	// Package overrides the package declared by the schema files.
	Package string
	// Output is the file to write. Empty means the source is only returned.
	Output string
}

// Run loads the schema files, generates the kind code and writes it to opts.Output.
func Run(opts Options) ([]byte, error) {
	schema, err := LoadSchema(opts.SchemaPaths...)
	if err != nil {
		return nil, err
	}

	src, err := Generate(schema, opts.Package)
	if err != nil {
		return nil, err
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, src, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", opts.Output, err)
		}
	}

	log.WithField("kinds", len(schema.Kinds)).
		WithField("output", opts.Output).
		Debug("generated kind code")
	return src, nil
}
