/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/kindstore/errors"
)

// Descriptor describes one entity kind.
type Descriptor struct {
	// Name is the kind name, e.g. "movie".
	Name string
	// Plural is used for list-all and clear, e.g. "movies".
	Plural string
	// IDFormat optionally names a strfmt format ids of this kind must satisfy.
	IDFormat string
	// Type is the record type bound to the kind.
	Type reflect.Type
	// NewCollection returns an empty datastore.DataStore for Type.
	NewCollection func() any
}

// Option configures a Descriptor.
type Option func(*Descriptor)

// WithPlural overrides the default plural (name + "s").
func WithPlural(plural string) Option {
	return func(d *Descriptor) {
		d.Plural = plural
	}
}

// WithIDFormat requires ids to satisfy the named strfmt format, e.g. "uuid".
func WithIDFormat(format string) Option {
	return func(d *Descriptor) {
		d.IDFormat = format
	}
}

// NewDescriptor builds a descriptor for name and applies opts.
func NewDescriptor(name string, typ reflect.Type, newCollection func() any, opts ...Option) Descriptor {
	d := Descriptor{
		Name:          name,
		Plural:        name + "s",
		Type:          typ,
		NewCollection: newCollection,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// ValidateID checks an id at the boundary, before it reaches a Store.
func (d Descriptor) ValidateID(id string) error {
	if id == "" {
		return errors.NewValidationError("id", fmt.Sprintf("%s id must not be empty", d.Name))
	}
	if d.IDFormat != "" && !strfmt.Default.Validates(d.IDFormat, id) {
		return errors.NewValidationError("id", fmt.Sprintf("%q is not a valid %s for kind %s", id, d.IDFormat, d.Name))
	}
	return nil
}

func (d Descriptor) validate() error {
	switch {
	case d.Name == "":
		return errors.NewValidationError("name", "kind name must not be empty")
	case d.Plural == "":
		return errors.NewValidationError("plural", fmt.Sprintf("kind %s has an empty plural", d.Name))
	case d.Type == nil:
		return errors.NewValidationError("type", fmt.Sprintf("kind %s has no record type", d.Name))
	case d.NewCollection == nil:
		return errors.NewValidationError("collection", fmt.Sprintf("kind %s has no collection factory", d.Name))
	case d.IDFormat != "" && !strfmt.Default.ContainsName(d.IDFormat):
		return errors.NewValidationError("idFormat", fmt.Sprintf("unknown id format %q", d.IDFormat))
	}
	return nil
}

func (d Descriptor) sameAs(other Descriptor) bool {
	return d.Name == other.Name &&
		d.Plural == other.Plural &&
		d.IDFormat == other.IDFormat &&
		d.Type == other.Type
}
