package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store against a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client for the given connection string and database name
// and verifies the server is reachable before returning.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Disconnect closes the underlying client.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M, out any) (bool, error) {
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *Mongo) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	return m.db.Collection(collection).CountDocuments(ctx, filter)
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (m *Mongo) InsertMany(ctx context.Context, collection string, docs []any) ([]string, error) {
	res, err := m.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		oid, ok := id.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted ID type %T", id)
		}
		ids = append(ids, oid.Hex())
	}
	return ids, nil
}

func (m *Mongo) FindMany(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := m.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}
