// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
)

// CredentialVerifier checks a set of editor credentials. Implemented by the
// editor store; stubbed in tests.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, email, password string) (bool, error)
}

// BasicAuth guards the admin API with HTTP Basic authentication resolved
// against the editor store. Public read endpoints never pass through here.
func BasicAuth(verifier CredentialVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				unauthorized(w)
				return
			}

			valid, err := verifier.VerifyCredentials(r.Context(), email, password)
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if !valid {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="adapticus admin"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
