package models

import (
	"encoding/json"
	"strings"
	"time"
)

type Article struct {
	ID         int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Title      string    `json:"title" bson:"title" db:"title"`
	Slug       string    `json:"slug" bson:"slug" db:"slug"`
	Summary    string    `json:"summary" bson:"summary" db:"summary"`
	Content    string    `json:"content" bson:"content" db:"content"`
	Category   string    `json:"category" bson:"category" db:"category"`
	Tags       []string  `json:"tags" bson:"tags" db:"tags"`
	CoverImage *string   `json:"coverImage,omitempty" bson:"cover_image,omitempty" db:"cover_image"`
	Published  bool      `json:"published" bson:"published" db:"published"`
	Views      int64     `json:"views" bson:"views" db:"views"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at" db:"updated_at"`
}

// ParseTags accepts tags either as a JSON array ("[\"go\",\"web\"]") or as a
// comma-separated list ("go, web"). Empty entries are dropped.
func ParseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	if strings.HasPrefix(raw, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(raw), &tags); err == nil {
			return filterEmptyTags(tags)
		}
	}

	return filterEmptyTags(strings.Split(raw, ","))
}

func filterEmptyTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}
