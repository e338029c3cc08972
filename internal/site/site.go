// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// Package site defines the closed set of site identities served by this
// backend and resolves client-supplied site keys against it.
package site

import "strings"

// ID identifies one of the websites sharing this backend.
type ID string

const (
	// Amare is the personal site and the default when no site key is given.
	Amare ID = "amare"
	// Adapticus is the Homo Adapticus site.
	Adapticus ID = "adapticus"
)

// Default is the site used when a request carries no site key at all.
const Default = Amare

// All lists every supported site.
var All = []ID{Amare, Adapticus}

// Valid reports whether id is one of the supported sites.
func Valid(id ID) bool {
	for _, s := range All {
		if s == id {
			return true
		}
	}
	return false
}

// Resolve maps a client-supplied site key to a supported site.
// An empty hint resolves to the default site; a non-empty hint must match
// a supported site (case-insensitive) or resolution fails. The asymmetry
// is deliberate: endpoints stay usable with no parameter while
// confidently-wrong input is rejected instead of silently falling back.
func Resolve(hint string) (ID, bool) {
	s := strings.ToLower(strings.TrimSpace(hint))
	if s == "" {
		return Default, true
	}
	id := ID(s)
	if Valid(id) {
		return id, true
	}
	return "", false
}
