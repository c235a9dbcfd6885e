package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements Store entirely in memory. It backs handler tests the same
// way an in-memory database would, and doubles as a store for local runs
// without a MongoDB instance. Documents are normalized through a BSON
// round trip so values compare and decode exactly as they would coming back
// from the driver.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]bson.M
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: map[string][]bson.M{}}
}

// normalize round-trips a value through BSON so stored documents carry the
// same primitive types the Mongo driver produces.
func normalize(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// matches reports whether doc satisfies every top-level equality in filter.
func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func (m *Memory) find(collection string, filter bson.M, limit int64) ([]bson.M, error) {
	normFilter, err := normalize(filter)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []bson.M
	for _, doc := range m.data[collection] {
		if matches(doc, normFilter) {
			out = append(out, doc)
			if limit > 0 && int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *Memory) FindOne(ctx context.Context, collection string, filter bson.M, out any) (bool, error) {
	docs, err := m.find(collection, filter, 1)
	if err != nil {
		return false, err
	}
	if len(docs) == 0 {
		return false, nil
	}
	raw, err := bson.Marshal(docs[0])
	if err != nil {
		return false, err
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	docs, err := m.find(collection, filter, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (m *Memory) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	stored, err := normalize(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	if existing, ok := stored["_id"].(primitive.ObjectID); ok && !existing.IsZero() {
		id = existing
	}
	stored["_id"] = id

	m.mu.Lock()
	m.data[collection] = append(m.data[collection], stored)
	m.mu.Unlock()

	return id.Hex(), nil
}

func (m *Memory) InsertMany(ctx context.Context, collection string, docs []any) ([]string, error) {
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		id, err := m.InsertOne(ctx, collection, doc)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *Memory) FindMany(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	docs, err := m.find(collection, filter, limit)
	if err != nil {
		return err
	}

	// out is a pointer to a slice; decode each document into a fresh element.
	slice := reflect.ValueOf(out).Elem()
	elemType := slice.Type().Elem()
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	return names, nil
}
