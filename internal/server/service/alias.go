package service

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	aliasStrip    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	aliasCollapse = regexp.MustCompile(`[-\s]+`)
	lowerCaser    = cases.Lower(language.Und)
)

// Slugify turns name into a URL-safe slug that keeps non-latin letters:
// NFKC normalized, lower-cased, punctuation dropped, runs of spaces and
// dashes joined with a single dash.
func Slugify(name string) string {
	s := norm.NFKC.String(name)
	s = aliasStrip.ReplaceAllString(lowerCaser.String(s), "")
	s = aliasCollapse.ReplaceAllString(strings.TrimSpace(s), "-")
	return strings.Trim(s, "-_")
}

// BuildAlias returns the campaign alias for name, or a random
// "campaign-xxxxxxxx" alias when the name has no usable characters.
func BuildAlias(name string) string {
	if slug := Slugify(name); slug != "" {
		return slug
	}
	return "campaign-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
