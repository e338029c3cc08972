// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// Package store implements the persistence layer: one store per aggregate,
// hand-written SQL over database/sql with the pgx driver. Lookups that find
// nothing return (nil, nil); every other failure is wrapped with context.
package store

import "time"

// nullableTime maps the zero time to SQL NULL so inserts can fall back to
// column defaults via COALESCE.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
