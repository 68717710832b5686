package entity

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a new random identifier for a stored record.
func NewID() string {
	return uuid.NewString()
}

// Slugify derives a URL slug: lowercase, spaces and slashes become hyphens.
// Nothing else is normalized and collisions are not checked.
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.ReplaceAll(slug, "/", "-")
}
