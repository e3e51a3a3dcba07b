/*
Package registry is the entity schema registry for kindstore.

A Schema maps kind names to record types. Each kind name maps to exactly one
record type and each record type is bound to at most one kind. Schemas only
grow: registering a new name adds a kind, re-registering an identical
descriptor is a no-op, and anything that would alter an existing kind is
rejected with an AlreadyExistsError.

	schema := registry.NewSchema()
	movies, _ := kindstore.Define[Movie](schema, "movie", registry.WithPlural("movies"))
	songs, _ := kindstore.Define[Song](schema, "song")

Schemas declared separately can be combined with Merge, which is
all-or-nothing.

Ids are not validated by the Store. Boundary code (see package seed) calls
Descriptor.ValidateID, which rejects empty ids and, when the kind declares an
id format through WithIDFormat, ids that fail the matching go-openapi/strfmt
format.

The schema is safe for concurrent use and is normally populated during
initialization, typically by generated code.
*/
package registry
