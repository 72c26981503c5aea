package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrim    = regexp.MustCompile(`(^-|-$)+`)
)

// Slugify turns a package title into its URL slug: lowercase, runs of
// non-alphanumerics collapsed to a single dash, dashes trimmed from the
// ends. Must stay in sync with the migrate-slugs backfill.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugTrim.ReplaceAllString(s, "")
	return s
}
