package models

// Schema is a JSON-schema-like description of one stored entity, served by
// GET /schema for external tooling. Each entity type declares its own schema
// explicitly; nothing here is derived through reflection, so the output stays
// stable even when internal struct layout changes.
type Schema struct {
	Title      string              `json:"title"`
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property describes a single field of an entity schema.
type Property struct {
	Type        string    `json:"type"`
	Format      string    `json:"format,omitempty"`
	Description string    `json:"description,omitempty"`
	Items       *Property `json:"items,omitempty"`
	Default     any       `json:"default,omitempty"`
	Nullable    bool      `json:"nullable,omitempty"`
}

// UserSchema describes the user collection.
func UserSchema() Schema {
	return Schema{
		Title: "User",
		Type:  "object",
		Properties: map[string]Property{
			"name":          {Type: "string", Description: "Full name"},
			"email":         {Type: "string", Format: "email", Description: "Email address"},
			"password_hash": {Type: "string", Description: "Hashed password (server-side computed)"},
			"avatar_url":    {Type: "string", Description: "Profile image URL", Nullable: true},
			"plan":          {Type: "string", Description: "Current plan: free, pro, business", Default: "free"},
			"is_active":     {Type: "boolean", Description: "Active account flag", Default: true},
			"created_at":    {Type: "string", Format: "date-time"},
			"updated_at":    {Type: "string", Format: "date-time"},
		},
		Required: []string{"name", "email", "password_hash"},
	}
}

// BlogPostSchema describes the blogpost collection.
func BlogPostSchema() Schema {
	return Schema{
		Title: "Blogpost",
		Type:  "object",
		Properties: map[string]Property{
			"title":        {Type: "string"},
			"slug":         {Type: "string"},
			"excerpt":      {Type: "string", Nullable: true},
			"content":      {Type: "string"},
			"author":       {Type: "string"},
			"tags":         {Type: "array", Items: &Property{Type: "string"}},
			"published":    {Type: "boolean", Default: true},
			"published_at": {Type: "string", Format: "date-time", Nullable: true},
			"cover_image":  {Type: "string", Nullable: true},
			"created_at":   {Type: "string", Format: "date-time"},
			"updated_at":   {Type: "string", Format: "date-time"},
		},
		Required: []string{"title", "slug", "content", "author"},
	}
}

// ContactMessageSchema describes the contactmessage collection.
func ContactMessageSchema() Schema {
	return Schema{
		Title: "Contactmessage",
		Type:  "object",
		Properties: map[string]Property{
			"name":       {Type: "string"},
			"email":      {Type: "string", Format: "email"},
			"subject":    {Type: "string", Nullable: true},
			"message":    {Type: "string"},
			"meta":       {Type: "object", Nullable: true},
			"created_at": {Type: "string", Format: "date-time"},
			"updated_at": {Type: "string", Format: "date-time"},
		},
		Required: []string{"name", "email", "message"},
	}
}
