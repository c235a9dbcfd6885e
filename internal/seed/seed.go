// Package seed inserts the demo content a fresh marketing site starts with.
package seed

import (
	"context"
	"time"

	"launchbase/internal/models"
	"launchbase/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string { return &s }

// BlogPosts returns the fixed set of demo posts, timestamped at now.
func BlogPosts(now time.Time) []models.BlogPost {
	return []models.BlogPost{
		{
			Title:       "Designing Trust in Fintech",
			Slug:        "designing-trust-in-fintech",
			Excerpt:     strPtr("How micro-interactions and clear copy build confidence in digital banking."),
			Content:     "Long form content...",
			Author:      "Team",
			Tags:        []string{"design", "fintech"},
			Published:   true,
			PublishedAt: &now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Pricing Psychology 101",
			Slug:        "pricing-psychology-101",
			Excerpt:     strPtr("Make tiers that guide choices without pressure."),
			Content:     "Long form content...",
			Author:      "Team",
			Tags:        []string{"pricing", "growth"},
			Published:   true,
			PublishedAt: &now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Your First 100 Users",
			Slug:        "your-first-100-users",
			Excerpt:     strPtr("Practical channels to get traction for your SaaS."),
			Content:     "Long form content...",
			Author:      "Team",
			Tags:        []string{"growth"},
			Published:   true,
			PublishedAt: &now,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// EnsureBlogPosts inserts every demo post whose slug is not yet present.
// It runs once at startup instead of inside the listing handler, which keeps
// the read path free of a count-then-insert race. Re-running it is a no-op.
func EnsureBlogPosts(ctx context.Context, st store.Store) error {
	var missing []any
	for _, post := range BlogPosts(time.Now().UTC()) {
		var existing models.BlogPost
		found, err := st.FindOne(ctx, models.BlogPostCollection, bson.M{"slug": post.Slug}, &existing)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		missing = append(missing, post)
	}

	if len(missing) == 0 {
		return nil
	}

	_, err := st.InsertMany(ctx, models.BlogPostCollection, missing)
	return err
}
