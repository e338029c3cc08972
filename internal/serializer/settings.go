// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package serializer

import (
	"encoding/json"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// SiteSettings is the public settings envelope for one site.
type SiteSettings struct {
	Site     site.ID                    `json:"site"`
	Settings map[string]json.RawMessage `json:"settings"`
}

// settingDefaults are applied for well-known keys absent from the store so
// front-ends can rely on their presence.
var settingDefaults = map[string]json.RawMessage{
	"site_title":   json.RawMessage(`"Amare Teklay"`),
	"social_links": json.RawMessage(`[]`),
	"footer_html":  json.RawMessage(`""`),
	"seo_defaults": json.RawMessage(`{}`),
}

// FlattenSettings merges a site's setting rows into a single keyed object,
// filling in documented defaults for missing keys.
func FlattenSettings(s site.ID, rows []models.Setting) SiteSettings {
	out := SiteSettings{
		Site:     s,
		Settings: make(map[string]json.RawMessage, len(rows)+len(settingDefaults)),
	}
	for _, row := range rows {
		out.Settings[row.Key] = row.Value
	}
	for key, def := range settingDefaults {
		if _, ok := out.Settings[key]; !ok {
			out.Settings[key] = def
		}
	}
	return out
}
