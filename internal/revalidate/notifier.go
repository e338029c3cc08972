// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

// Package revalidate notifies the front-ends that a piece of content
// changed so they can refresh their static caches. Delivery is strictly
// best-effort: the sites also revalidate on their own timers, so a lost
// notification only delays the refresh.
package revalidate

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Amareteklay/adapticus-backend/internal/models"
	"github.com/Amareteklay/adapticus-backend/internal/site"
)

// requestTimeout caps each outbound call so a slow endpoint cannot hold up
// the write path it runs on.
const requestTimeout = 4 * time.Second

// payload is the revalidation message the front-ends consume.
type payload struct {
	Type string  `json:"type"`
	Site site.ID `json:"site"`
	Slug string  `json:"slug"`
}

// Notifier posts revalidation messages to a configured endpoint. A Notifier
// with no endpoint or secret is a no-op; a nil Notifier is also safe.
type Notifier struct {
	endpoint string
	secret   string
	client   *http.Client
}

// New creates a Notifier. Either value empty disables it.
func New(endpoint, secret string) *Notifier {
	return &Notifier{
		endpoint: endpoint,
		secret:   secret,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// Enabled reports whether the notifier has a destination to deliver to.
func (n *Notifier) Enabled() bool {
	return n != nil && n.endpoint != "" && n.secret != ""
}

// NotifyPost emits a revalidation for a post, but only when the post is
// publicly visible — drafts, scheduled, archived, and unlisted posts stay
// silent.
func (n *Notifier) NotifyPost(p *models.Post) {
	if !p.IsPubliclyVisible() {
		return
	}
	n.send(payload{Type: "post", Site: p.Site, Slug: p.Slug})
}

// NotifyPage emits a revalidation on every page save. Pages have no
// draft state; any save is visible.
func (n *Notifier) NotifyPage(pg *models.Page) {
	n.send(payload{Type: "page", Site: pg.Site, Slug: pg.Slug})
}

// send delivers one message. All failures — bad config, network errors,
// timeouts, non-2xx responses — are swallowed after a debug log. The write
// path this runs on must never observe an error from here.
func (n *Notifier) send(msg payload) {
	if !n.Enabled() {
		return
	}

	body, err := json.Marshal(msg)
	if err != nil {
		slog.Debug("revalidate payload marshal failed", "error", err)
		return
	}

	u, err := url.Parse(n.endpoint)
	if err != nil {
		slog.Debug("revalidate endpoint invalid", "error", err)
		return
	}
	q := u.Query()
	q.Set("secret", n.secret)
	u.RawQuery = q.Encode()

	resp, err := n.client.Post(u.String(), "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Debug("revalidate request failed", "type", msg.Type, "site", msg.Site, "slug", msg.Slug, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("revalidate endpoint rejected", "status", resp.StatusCode, "type", msg.Type, "site", msg.Site, "slug", msg.Slug)
		return
	}

	slog.Debug("revalidate sent", "type", msg.Type, "site", msg.Site, "slug", msg.Slug)
}
