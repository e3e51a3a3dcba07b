/*
Package processor generates the per-kind operation surface of a kindstore
schema.

The processor reads one or more YAML schema files, merges them additively and
renders Go code declaring the record types, their kind handles, a shared
Schema and a DataStore wrapper with one method set per kind.

Schema file:

	package: catalog
	kinds:
	  - name: movie
	    plural: movies        # optional, defaults to name + "s"
	    idFormat: uuid        # optional go-openapi/strfmt format
	    fields:
	      - name: director
	        type: string      # string, int, int64, float64, bool, date-time

Kinds may be spread across several files. A later file may add kinds but never
redefine one declared earlier, and every record type belongs to one kind.

Generated Code:

	type Movie struct {
	    ID       string `json:"id" yaml:"id"`
	    Director string `json:"director" yaml:"director"`
	}

	var MovieKind = kindstore.MustDefine[Movie](Schema, "movie", registry.WithPlural("movies"))

	func (d *DataStore) AddMovie(arg Movie) Movie
	func (d *DataStore) GetAllMovies() []Movie
	func (d *DataStore) GetMovie(id string) (Movie, error)
	func (d *DataStore) ClearMovies()

The generator is driven by "entityctl generate", usually from a go:generate
directive next to the schema files.
*/
package processor
