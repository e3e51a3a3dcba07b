/*
Package catalog is the media catalog schema: movies and songs.

The record types, kind handles and DataStore methods live in catalog_gen.go,
generated from the files under schema/. To add a kind, declare it in a schema
file and regenerate; no other code changes are needed.

	ds := catalog.NewDataStore()
	ds.AddMovie(catalog.Movie{ID: "m1", Director: "Nolan"})
	ds.AddSong(catalog.Song{ID: "s1", Singer: "Adele"})

	ds.GetAllMovies()  // [{m1 Nolan}]
	ds.GetMovie("s1")  // NotFoundError{Kind: "movie", ID: "s1"}
	ds.ClearMovies()   // songs untouched
*/
package catalog

//go:generate go run ../cmd/entityctl generate --schema schema/movie.yaml --schema schema/song.yaml --out catalog_gen.go
