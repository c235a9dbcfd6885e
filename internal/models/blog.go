package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPostCollection is the store collection holding blog post documents.
const BlogPostCollection = "blogpost"

// BlogPost represents a published article on the marketing site.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Excerpt     *string            `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"`
	Author      string             `bson:"author" json:"author"`
	Tags        []string           `bson:"tags" json:"tags"`
	Published   bool               `bson:"published" json:"published"`
	PublishedAt *time.Time         `bson:"published_at" json:"published_at"`
	CoverImage  *string            `bson:"cover_image" json:"cover_image"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// BlogPostResponse is the client-facing shape of a blog post.
type BlogPostResponse struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	CoverImage  *string    `json:"cover_image"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Public converts a stored blog post into its response shape.
func (p BlogPost) Public() BlogPostResponse {
	return BlogPostResponse{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		Author:      p.Author,
		Tags:        p.Tags,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CoverImage:  p.CoverImage,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
