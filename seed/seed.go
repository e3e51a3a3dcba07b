/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"context"
	"fmt"

	"github.com/suparena/kindstore"
	"github.com/suparena/kindstore/logging"
)

var log = logging.GetLogger("seed")

// Source supplies records of one kind from outside the Store.
type Source[T kindstore.Entity] interface {
	// Name identifies the source in reports and errors.
	Name() string
	// Records fetches every record the source holds for its kind.
	Records(ctx context.Context) ([]T, error)
}

// Report summarizes one Load call.
type Report struct {
	Kind   string `json:"kind"`
	Source string `json:"source"`
	Loaded int    `json:"loaded"`
}

// Load adds every record of src to kind k in store. Ids are validated first;
// if any record is rejected, nothing is added.
func Load[T kindstore.Entity](ctx context.Context, store *kindstore.Store, k kindstore.Kind[T], src Source[T]) (Report, error) {
	report := Report{Kind: k.Name(), Source: src.Name()}

	records, err := src.Records(ctx)
	if err != nil {
		return report, fmt.Errorf("seed %s from %s: %w", k.Name(), src.Name(), err)
	}

	desc := k.Descriptor()
	for i, r := range records {
		if err := desc.ValidateID(r.GetID()); err != nil {
			return report, fmt.Errorf("seed %s from %s: record %d: %w", k.Name(), src.Name(), i, err)
		}
	}

	for _, r := range records {
		kindstore.Add(store, k, r)
	}
	report.Loaded = len(records)

	log.WithField("kind", report.Kind).
		WithField("source", report.Source).
		WithField("loaded", report.Loaded).
		Info("seeded kind")
	return report, nil
}

// Static is a Source backed by an in-memory slice.
type Static[T kindstore.Entity] struct {
	name    string
	records []T
}

// NewStatic creates a Static source.
func NewStatic[T kindstore.Entity](name string, records ...T) *Static[T] {
	return &Static[T]{name: name, records: records}
}

func (s *Static[T]) Name() string { return s.name }

func (s *Static[T]) Records(ctx context.Context) ([]T, error) {
	return s.records, nil
}
