/*
Package seed loads records from external sources into a kindstore Store.

Seeding is the boundary where malformed input is rejected: every record's id is
checked against its kind's descriptor (non-empty, plus the kind's strfmt id
format when declared) before anything is added. A source with a single bad
record adds nothing.

	ds := catalog.NewDataStore()
	report, err := seed.Load(ctx, ds.Store(), catalog.MovieKind,
	    seed.NewFile[catalog.Movie]("seed.yaml", catalog.MovieKind.Name()))

Sources:
  - File: a section of a YAML or JSON seed file
  - Static: an in-memory slice
  - ddb.Table: a kind's partition in a DynamoDB single-table design
*/
package seed
