/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

// DataStore is the collection a Store keeps for one entity kind.
// Operations are synchronous and total.
type DataStore[T any] interface {
	// Put inserts or overwrites the record stored under its key and returns it unchanged.
	Put(entity T) T

	// GetOne returns the record stored under key. ok is false iff no such record exists.
	GetOne(key string) (entity T, ok bool)

	// All returns a snapshot of every record. Later mutations are not observed through it.
	All() []T

	// Clear removes every record. Clearing an empty collection is a no-op.
	Clear()

	// Count returns the number of stored records.
	Count() int
}
