/*
Package datastore defines the per-kind collection used by the kindstore Store.

The main interface is DataStore[T]:

	type DataStore[T any] interface {
	    Put(entity T) T
	    GetOne(key string) (T, bool)
	    All() []T
	    Clear()
	    Count() int
	}

Implementations:
  - memory: ordered in-memory collection with last-write-wins semantics

A Store owns exactly one DataStore per registered kind and never hands it out;
callers only reach it through the Store's typed operations.
*/
package datastore
