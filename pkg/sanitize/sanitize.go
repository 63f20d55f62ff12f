package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips every tag and entity-encodes what remains.
var strict = bluemonday.StrictPolicy()

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// Clean trims the input, strips all markup and HTML-escapes the rest.
// Used for every plain-text field; rich-content fields bypass it and
// are stored verbatim.
func Clean(input string) string {
	return strict.Sanitize(strings.TrimSpace(input))
}

// Slug derives a URL slug from a title: lowercased, with runs of
// characters outside [a-z0-9-] collapsed to single dashes.
func Slug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = slugDashes.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
