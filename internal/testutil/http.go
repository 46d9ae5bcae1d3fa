package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/seftonweb/southportlocal/internal/app/system/auth"
)

// AdminEmail is the operator identity injected by NewAdminRequest.
const AdminEmail = "admin@test.com"

// NewRequest builds a plain GET-style request for handler tests.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAdminRequest builds a request with the operator already in context,
// skipping the session middleware.
func NewAdminRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return auth.WithTestAdmin(req, &auth.Admin{Email: AdminEmail})
}

// NewFormRequest builds a POST with url-encoded form values and the matching
// Content-Type header.
func NewFormRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ResponseRecorder adds assertion helpers on top of httptest's recorder.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus fails the test unless the recorded status matches.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect fails unless the response is a redirect to expectedLocation.
// Accepts 301, 302 and 303; handlers here use 303 after form posts.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	switch r.Code {
	case http.StatusSeeOther, http.StatusFound, http.StatusMovedPermanently:
	default:
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	if got := r.Header().Get("Location"); got != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", got, expectedLocation)
	}
}

// AssertContains fails unless the body contains the given substring.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
