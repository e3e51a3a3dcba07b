/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package kindstore

import (
	"fmt"

	"github.com/suparena/kindstore/datastore"
	"github.com/suparena/kindstore/errors"
	"github.com/suparena/kindstore/registry"
)

// Store holds one private collection per kind of the schema it was built from.
type Store struct {
	kinds       []string
	collections map[string]any
}

// New creates a Store with an empty collection for every kind currently in schema.
// Kinds registered later are not part of the Store.
func New(schema *registry.Schema) *Store {
	descriptors := schema.Descriptors()
	s := &Store{
		kinds:       make([]string, 0, len(descriptors)),
		collections: make(map[string]any, len(descriptors)),
	}
	for _, d := range descriptors {
		s.kinds = append(s.kinds, d.Name)
		s.collections[d.Name] = d.NewCollection()
	}
	return s
}

// Kinds returns the kinds held by the Store in registration order.
func (s *Store) Kinds() []string {
	kinds := make([]string, len(s.kinds))
	copy(kinds, s.kinds)
	return kinds
}

// collection resolves k to its DataStore. A kind the Store does not hold is a programming error.
func collection[T Entity](s *Store, k Kind[T]) datastore.DataStore[T] {
	c, ok := s.collections[k.Name()].(datastore.DataStore[T])
	if !ok {
		panic(fmt.Sprintf("kindstore: kind %q with record type %T is not part of this store", k.Name(), *new(T)))
	}
	return c
}

// Add inserts record into k's collection, overwriting any record with the same id.
// It returns record unchanged.
func Add[T Entity](s *Store, k Kind[T], record T) T {
	return collection(s, k).Put(record)
}

// GetAll returns a snapshot of every record of kind k in insertion order.
func GetAll[T Entity](s *Store, k Kind[T]) []T {
	return collection(s, k).All()
}

// Get returns the record of kind k stored under id, or a *errors.NotFoundError.
func Get[T Entity](s *Store, k Kind[T], id string) (T, error) {
	record, ok := collection(s, k).GetOne(id)
	if !ok {
		var zero T
		return zero, errors.NewNotFoundError(k.Name(), id)
	}
	return record, nil
}

// Clear empties k's collection. Other kinds are untouched.
func Clear[T Entity](s *Store, k Kind[T]) {
	collection(s, k).Clear()
}

// Count returns the number of records of kind k.
func Count[T Entity](s *Store, k Kind[T]) int {
	return collection(s, k).Count()
}
