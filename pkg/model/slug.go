package model

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens     = regexp.MustCompile(`^-|-$`)
)

// Slugify derives a URL-safe slug from a human-readable title: lowercase,
// runs of non-alphanumerics collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = edgeHyphens.ReplaceAllString(slug, "")
	return slug
}
