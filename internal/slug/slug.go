// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
// Non-ASCII input (Swedish diacritics, Ge'ez script) is transliterated to
// ASCII first so slugs stay portable across front-ends.
package slug

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hej Världen! 2026" → "hej-varlden-2026"
func Generate(s string) string {
	result := unidecode.Unidecode(strings.TrimSpace(s))
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
