package server

import (
	"context"
	"testing"

	"launchbase/internal/models"
	"launchbase/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestContactMinimalPayload(t *testing.T) {
	m := store.NewMemory()
	app := newTestApp(m)

	status, body := doJSON(t, app, "POST", "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello there",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	id, ok := body["id"].(string)
	require.True(t, ok)
	_, err := primitive.ObjectIDFromHex(id)
	assert.NoError(t, err)

	var stored models.ContactMessage
	found, err := m.FindOne(context.Background(), models.ContactMessageCollection,
		bson.M{"email": "visitor@example.com"}, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Hello there", stored.Message)
	assert.Nil(t, stored.Subject)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestContactFullPayload(t *testing.T) {
	m := store.NewMemory()
	app := newTestApp(m)

	status, _ := doJSON(t, app, "POST", "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Pricing question",
		"message": "How much for the business plan?",
		"meta":    map[string]any{"source": "pricing-page"},
	})
	require.Equal(t, fiber.StatusOK, status)

	var stored models.ContactMessage
	found, err := m.FindOne(context.Background(), models.ContactMessageCollection,
		bson.M{"email": "visitor@example.com"}, &stored)
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, stored.Subject)
	assert.Equal(t, "Pricing question", *stored.Subject)
	assert.Equal(t, "pricing-page", stored.Meta["source"])
}

func TestContactValidation(t *testing.T) {
	app := newTestApp(store.NewMemory())

	tests := []struct {
		name        string
		requestBody map[string]any
	}{
		{"Missing message", map[string]any{"name": "V", "email": "v@example.com"}},
		{"Missing email", map[string]any{"name": "V", "message": "hi"}},
		{"Bad email", map[string]any{"name": "V", "email": "nope", "message": "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, "POST", "/api/contact", tt.requestBody)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.NotNil(t, body["error"])
		})
	}
}

func TestContactStoreUnavailable(t *testing.T) {
	app := newTestApp(nil)

	status, body := doJSON(t, app, "POST", "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Hello",
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Database not available", body["error"])
}
