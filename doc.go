/*
Package kindstore is an in-process typed entity registry: one store holding an
independent collection per entity kind, each kind with its own record type,
behind a uniform and statically type-checked set of operations.

The library follows a declare → generate → use workflow:
  - Declare: list the kinds and their fields in a schema file
  - Generate: the processor emits record types and per-kind methods
  - Use: call AddMovie, GetAllMovies, GetMovie, ClearMovies, ...

The generated methods are thin wrappers over the generic API of this package,
which can also be used directly:

	schema := registry.NewSchema()
	movies := kindstore.MustDefine[Movie](schema, "movie")
	songs := kindstore.MustDefine[Song](schema, "song")

	store := kindstore.New(schema)
	kindstore.Add(store, movies, Movie{ID: "m1", Director: "Nolan"})

	m, err := kindstore.Get(store, movies, "m1")   // m is a Movie
	_, err = kindstore.Get(store, songs, "m1")      // *errors.NotFoundError{Kind: "song", ID: "m1"}
	all := kindstore.GetAll(store, movies)          // snapshot, insertion order
	kindstore.Clear(store, movies)                  // songs untouched

Semantics:
  - Add overwrites a record with the same id (last write wins) and never fails
  - GetAll returns a fresh slice in insertion order; overwrites keep their position
  - Get fails with a NotFoundError carrying the kind and the id, never a placeholder
  - Clear empties exactly one kind and is idempotent

Each collection is guarded by its own lock, so an operation is atomic with
respect to its own kind only. There are no cross-kind transactions.
*/
package kindstore
