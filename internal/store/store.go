// Package store provides a thin document gateway over named collections in a
// document store. Handlers depend on the Store interface so tests can swap the
// Mongo-backed implementation for an in-memory one.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable reports that the document store is not reachable or was
// never initialized. It is distinct from "zero results": lookups against a
// healthy store signal absence through their return values, never through
// this error.
var ErrUnavailable = errors.New("document store unavailable")

// Store defines generic operations against named collections. Implementations
// must not mutate caller-supplied filters or documents, and every generated
// identifier crosses this boundary as a plain hex string.
type Store interface {
	// FindOne decodes the first document matching filter into out. The
	// boolean reports whether a document was found; absence is not an error.
	FindOne(ctx context.Context, collection string, filter bson.M, out any) (bool, error)
	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	// InsertOne stores doc and returns the generated identifier.
	InsertOne(ctx context.Context, collection string, doc any) (string, error)
	// InsertMany stores docs in order and returns the generated identifiers.
	InsertMany(ctx context.Context, collection string, docs []any) ([]string, error)
	// FindMany decodes up to limit matching documents into out, which must be
	// a pointer to a slice. A limit <= 0 means no limit.
	FindMany(ctx context.Context, collection string, filter bson.M, limit int64, out any) error
	// Ping verifies connectivity.
	Ping(ctx context.Context) error
	// Collections lists collection names, for diagnostics.
	Collections(ctx context.Context) ([]string, error)
}
