package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessageCollection is the store collection holding contact submissions.
const ContactMessageCollection = "contactmessage"

// ContactMessage represents a contact form submission. Messages are written
// once and never read back through the API.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   *string            `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Meta      map[string]any     `bson:"meta" json:"meta"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
