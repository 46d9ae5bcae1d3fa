package testutil

import (
	"context"
	"net/http"
)

// gorilla/csrf stores the token under this context key. Handlers call
// csrf.Token(r) (directly or through viewdata.NewBaseVM), so tests that skip
// the CSRF middleware need a token planted here.
const csrfTokenKey = "gorilla.csrf.Token"

// WithCSRFToken plants a fixed token in the request context so template
// rendering sees a non-empty value.
func WithCSRFToken(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenKey, "test-csrf-token-12345")
	return r.WithContext(ctx)
}

// NewAdminRequestWithCSRF combines NewAdminRequest and WithCSRFToken. Use it
// for admin handlers that render forms.
func NewAdminRequestWithCSRF(method, target string) *http.Request {
	return WithCSRFToken(NewAdminRequest(method, target))
}
