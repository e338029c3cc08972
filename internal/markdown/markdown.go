// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// Package markdown renders post and page bodies to HTML using goldmark.
// The dialect is CommonMark plus pipe tables and strikethrough, matching
// what the front-ends were written against.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is the configured goldmark instance, reused across calls. A goldmark
// instance is safe for concurrent use once constructed.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
	),
)

// ToHTML converts Markdown source into HTML. Empty input yields an empty
// string without touching the renderer.
func ToHTML(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
