// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// Package locale negotiates the content language for a request. The backend
// serves translated content in English, Swedish, and Tigrinya; anything a
// client sends — query parameter, bare code, language-region tag, or a full
// Accept-Language list — is mapped onto one of those three codes.
package locale

import "strings"

const (
	// English is the fallback locale: translations missing in the
	// requested locale resolve to their English record.
	English = "en"
	// Swedish locale code.
	Swedish = "sv"
	// Tigrinya uses the Eritrea/Ethiopia regional code, matching how the
	// translations are stored.
	Tigrinya = "ti-et"
)

// Default is returned for empty or unrecognized hints.
const Default = English

// Supported lists every locale content can be translated into.
var Supported = []string{English, Swedish, Tigrinya}

// IsSupported reports whether code is a supported locale code.
func IsSupported(code string) bool {
	for _, l := range Supported {
		if l == code {
			return true
		}
	}
	return false
}

// Resolve maps a language hint to a supported locale code. Accepts bare
// codes ("sv"), language-region tags ("en-US"), and weighted header lists
// ("sv-SE,en;q=0.8") — only the first comma-separated entry is considered.
// Resolve is total: unrecognized or empty input yields the default locale.
func Resolve(hint string) string {
	if hint == "" {
		return Default
	}

	v := strings.ToLower(strings.TrimSpace(hint))

	// Accept-Language lists: take the first entry, drop any q-weight.
	v = strings.TrimSpace(strings.SplitN(v, ",", 2)[0])
	if i := strings.IndexByte(v, ';'); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}

	if IsSupported(v) {
		return v
	}

	switch {
	case strings.HasPrefix(v, "sv"):
		return Swedish
	case strings.HasPrefix(v, "en"):
		return English
	case v == "ti" || v == "ti-er" || v == "ti-et":
		return Tigrinya
	}

	return Default
}
