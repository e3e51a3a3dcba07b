/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/kindstore/errors"
)

// Schema is the closed set of entity kinds a Store is built from.
// Evolution is additive-only: a kind, once registered, cannot be redefined.
type Schema struct {
	mu     sync.RWMutex
	byName map[string]Descriptor
	byType map[reflect.Type]string
	order  []string
}

// NewSchema creates an empty Schema.
func NewSchema() *Schema {
	return &Schema{
		byName: make(map[string]Descriptor),
		byType: make(map[reflect.Type]string),
	}
}

// Register adds a kind descriptor to the schema.
// Re-registering an identical descriptor is a no-op.
func (s *Schema) Register(d Descriptor) error {
	if err := d.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registerLocked(d)
}

func (s *Schema) registerLocked(d Descriptor) error {
	if err := s.checkLocked(d); err != nil {
		return err
	}
	if _, exists := s.byName[d.Name]; exists {
		return nil
	}

	s.byName[d.Name] = d
	s.byType[d.Type] = d.Name
	s.order = append(s.order, d.Name)
	return nil
}

// checkLocked reports whether d conflicts with what is already registered.
func (s *Schema) checkLocked(d Descriptor) error {
	if old, exists := s.byName[d.Name]; exists {
		if old.sameAs(d) {
			return nil
		}
		return errors.NewAlreadyExistsError("kind", d.Name)
	}
	if owner, exists := s.byType[d.Type]; exists {
		return errors.NewAlreadyExistsError("record type", d.Type.String()+" (kind "+owner+")")
	}
	return nil
}

// Merge adds every kind of other to s. Nothing is added when any kind conflicts.
func (s *Schema) Merge(other *Schema) error {
	incoming := other.Descriptors()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Kinds within other never conflict with each other, so checking against s is enough.
	for _, d := range incoming {
		if err := s.checkLocked(d); err != nil {
			return err
		}
	}
	for _, d := range incoming {
		if err := s.registerLocked(d); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the descriptor registered under name.
func (s *Schema) Lookup(name string) (Descriptor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byName[name]
	return d, ok
}

// Descriptors returns every registered descriptor in registration order.
func (s *Schema) Descriptors() []Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Descriptor, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.byName[name])
	}
	return result
}

// Names returns every registered kind name in registration order.
func (s *Schema) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of registered kinds.
func (s *Schema) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
