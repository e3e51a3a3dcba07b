/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/kindstore"
)

// File reads one kind's section from a YAML (or JSON) seed file:
//
//	movie:
//	  - id: m1
//	    director: Nolan
//	song:
//	  - id: s1
//	    singer: Adele
type File[T kindstore.Entity] struct {
	path string
	kind string
}

// NewFile creates a File source reading the section named kind from path.
func NewFile[T kindstore.Entity](path, kind string) *File[T] {
	return &File[T]{path: path, kind: kind}
}

func (f *File[T]) Name() string { return f.path }

// Records decodes the kind's section. A file without that section holds no records.
func (f *File[T]) Records(ctx context.Context) ([]T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	section, ok := sections[f.kind]
	if !ok {
		return nil, nil
	}

	var records []T
	if err := section.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s records: %w", f.kind, err)
	}
	return records, nil
}
