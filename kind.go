/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kindstore

import (
	"fmt"
	"reflect"

	"github.com/suparena/kindstore/datastore/memory"
	"github.com/suparena/kindstore/registry"
)

// Entity is any record with a unique string identifier.
type Entity interface {
	GetID() string
}

// Kind is the compile-time handle of an entity kind whose records have type T.
type Kind[T Entity] struct {
	desc registry.Descriptor
}

// Define registers a kind named name with record type T in schema.
func Define[T Entity](schema *registry.Schema, name string, opts ...registry.Option) (Kind[T], error) {
	desc := registry.NewDescriptor(name, reflect.TypeOf((*T)(nil)).Elem(), newCollection[T], opts...)
	if err := schema.Register(desc); err != nil {
		return Kind[T]{}, fmt.Errorf("define kind %q: %w", name, err)
	}
	return Kind[T]{desc: desc}, nil
}

// MustDefine is like Define but panics on error. It is meant for package-level declarations.
func MustDefine[T Entity](schema *registry.Schema, name string, opts ...registry.Option) Kind[T] {
	k, err := Define[T](schema, name, opts...)
	if err != nil {
		panic(err)
	}
	return k
}

// Name returns the kind name, e.g. "movie".
func (k Kind[T]) Name() string {
	return k.desc.Name
}

// Plural returns the plural used by list-all and clear, e.g. "movies".
func (k Kind[T]) Plural() string {
	return k.desc.Plural
}

// Descriptor returns the schema entry of the kind.
func (k Kind[T]) Descriptor() registry.Descriptor {
	return k.desc
}

func newCollection[T Entity]() any {
	return memory.New(func(record T) string { return record.GetID() })
}
