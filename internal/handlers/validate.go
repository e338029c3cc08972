// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Amareteklay/adapticus-backend/internal/locale"
	"github.com/Amareteklay/adapticus-backend/internal/models"
)

// Validation limits for content fields.
const (
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxBodyLen    = 200_000
	maxSummaryLen = 1_000
	maxSEOLen     = 500
)

// validatePostTranslations checks the translation map of a post write and
// returns the first error found, or "".
func validatePostTranslations(trs map[string]models.PostTranslation) string {
	if len(trs) == 0 {
		return "At least one translation is required."
	}
	for code, tr := range trs {
		if !locale.IsSupported(code) {
			return "Unsupported locale " + strconv.Quote(code) + "."
		}
		if msg := validateTranslationText(tr.Title, tr.BodyMD, tr.SEOTitle, tr.SEODesc); msg != "" {
			return msg
		}
		if utf8.RuneCountInString(tr.Summary) > maxSummaryLen {
			return "Summary is too long (max 1,000 characters)."
		}
	}
	return ""
}

// validatePageTranslations mirrors validatePostTranslations for the page
// record shape, which has no summary.
func validatePageTranslations(trs map[string]models.PageTranslation) string {
	if len(trs) == 0 {
		return "At least one translation is required."
	}
	for code, tr := range trs {
		if !locale.IsSupported(code) {
			return "Unsupported locale " + strconv.Quote(code) + "."
		}
		if msg := validateTranslationText(tr.Title, tr.BodyMD, tr.SEOTitle, tr.SEODesc); msg != "" {
			return msg
		}
	}
	return ""
}

func validateTranslationText(title, body, seoTitle, seoDesc string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Body is too long (max 200,000 characters)."
	}
	if utf8.RuneCountInString(seoTitle) > maxSEOLen {
		return "SEO title is too long (max 500 characters)."
	}
	if utf8.RuneCountInString(seoDesc) > maxSEOLen {
		return "SEO description is too long (max 500 characters)."
	}
	return ""
}

// validateSlug checks an explicit slug value. Empty is fine; a slug is
// derived from the default-locale title in that case.
func validateSlug(s string) string {
	if utf8.RuneCountInString(s) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	return ""
}
