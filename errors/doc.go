/*
Package errors provides semantic error types for kindstore.

The only error the Store itself raises is NotFoundError, returned by get-by-id
when a kind's collection has no record for the requested id. The remaining
types are raised by the schema registry, the code generator and the seed
loaders.

Common Errors:

	var (
	    ErrNotFound      = errors.New("entity not found")
	    ErrAlreadyExists = errors.New("entity already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrUnknownKind   = errors.New("unknown entity kind")
	)

Usage:

	movie, err := kindstore.Get(store, catalog.MovieKind, "m1")
	if err != nil {
	    if errors.IsNotFound(err) {
	        var nf *errors.NotFoundError
	        stderrors.As(err, &nf) // nf.Kind == "movie", nf.ID == "m1"
	    }
	    return err
	}

The error types implement the error interface and support wrapping, so
errors.Is keeps matching after fmt.Errorf("...: %w", err).
*/
package errors
