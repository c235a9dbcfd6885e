package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type widget struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Qty  int32              `bson:"qty"`
}

func TestMemoryInsertOneAndFindOne(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.InsertOne(ctx, "widgets", widget{Name: "gear", Qty: 3})
	require.NoError(t, err)

	// The generated identifier is a plain hex string
	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	var got widget
	found, err := m.FindOne(ctx, "widgets", bson.M{"name": "gear"}, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, oid, got.ID)
	assert.Equal(t, "gear", got.Name)
	assert.Equal(t, int32(3), got.Qty)
}

func TestMemoryFindOneAbsent(t *testing.T) {
	m := NewMemory()

	var got widget
	found, err := m.FindOne(context.Background(), "widgets", bson.M{"name": "missing"}, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCount(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, w := range []widget{{Name: "gear", Qty: 1}, {Name: "gear", Qty: 2}, {Name: "cog", Qty: 1}} {
		_, err := m.InsertOne(ctx, "widgets", w)
		require.NoError(t, err)
	}

	n, err := m.Count(ctx, "widgets", bson.M{"name": "gear"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = m.Count(ctx, "widgets", bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = m.Count(ctx, "empty", bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestMemoryInsertManyAndFindMany(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ids, err := m.InsertMany(ctx, "widgets", []any{
		widget{Name: "a", Qty: 1},
		widget{Name: "b", Qty: 2},
		widget{Name: "c", Qty: 3},
	})
	require.NoError(t, err)
	require.Len(t, ids, 3)
	for _, id := range ids {
		_, err := primitive.ObjectIDFromHex(id)
		assert.NoError(t, err)
	}

	// Insertion order is preserved
	var all []widget
	require.NoError(t, m.FindMany(ctx, "widgets", bson.M{}, 0, &all))
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "c", all[2].Name)

	var limited []widget
	require.NoError(t, m.FindMany(ctx, "widgets", bson.M{}, 2, &limited))
	assert.Len(t, limited, 2)
}

func TestMemoryDoesNotMutateFilter(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.InsertOne(ctx, "widgets", widget{Name: "gear", Qty: 1})
	require.NoError(t, err)

	filter := bson.M{"name": "gear"}
	var got widget
	_, err = m.FindOne(ctx, "widgets", filter, &got)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "gear"}, filter)
}

func TestMemoryCollections(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.InsertOne(ctx, "widgets", widget{Name: "gear"})
	require.NoError(t, err)
	_, err = m.InsertOne(ctx, "gadgets", widget{Name: "spring"})
	require.NoError(t, err)

	names, err := m.Collections(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"widgets", "gadgets"}, names)
	assert.NoError(t, m.Ping(ctx))
}
