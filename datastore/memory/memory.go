/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides the in-memory implementation of datastore.DataStore.
package memory

import (
	"sync"
)

// DataStore keeps records in insertion order. A record overwritten under an
// existing key keeps its original position.
type DataStore[T any] struct {
	mu      sync.RWMutex
	index   map[string]int
	records []T
	keyFunc func(entity T) string
}

// New creates an empty DataStore that keys records with keyFunc.
func New[T any](keyFunc func(T) string) *DataStore[T] {
	return &DataStore[T]{
		index:   make(map[string]int),
		keyFunc: keyFunc,
	}
}

// Put stores an entity, overwriting any record with the same key
func (m *DataStore[T]) Put(entity T) T {
	key := m.keyFunc(entity)

	m.mu.Lock()
	defer m.mu.Unlock()

	if pos, exists := m.index[key]; exists {
		m.records[pos] = entity
		return entity
	}

	m.index[key] = len(m.records)
	m.records = append(m.records, entity)
	return entity
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if pos, exists := m.index[key]; exists {
		return m.records[pos], true
	}

	var zero T
	return zero, false
}

// All returns a copy of the stored records in insertion order
func (m *DataStore[T]) All() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]T, len(m.records))
	copy(result, m.records)
	return result
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.index = make(map[string]int)
	m.records = nil
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Keys returns the stored keys in insertion order
func (m *DataStore[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, len(m.records))
	for i, r := range m.records {
		keys[i] = m.keyFunc(r)
	}
	return keys
}
