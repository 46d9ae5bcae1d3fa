// Package auth implements cookie-session authentication for the admin area.
// The site has a single operator account configured at startup, so there is
// no user table; the session only records that the operator signed in.
package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	isAuthKey     = "is_authenticated"
	adminEmailKey = "admin_email"
)

// Admin represents the signed-in operator in the request context.
type Admin struct {
	Email string
}

type ctxKey string

const currentAdminKey ctxKey = "currentAdmin"

// SessionManager encapsulates the session store and configuration.
// Use NewSessionManager to create an instance.
type SessionManager struct {
	store  *sessions.CookieStore
	logger *zap.Logger
	name   string
}

// SessionConfigError is returned when session configuration is invalid.
type SessionConfigError struct {
	Message string
}

func (e *SessionConfigError) Error() string {
	return e.Message
}

// NewSessionManager creates a SessionManager.
//
//   - sessionKey: signing key for cookies (must be ≥32 chars in production)
//   - name: session cookie name (defaults to "southportlocal-session" if empty)
//   - domain: cookie domain (empty means current host)
//   - maxAge: session cookie lifetime
//   - secure: if true, cookies are Secure (HTTPS production)
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, &SessionConfigError{Message: "session key is empty; provide ≥32 random chars"}
	}

	isWeak := len(sessionKey) < 32 || isDefaultKey(sessionKey)
	if secure && isWeak {
		return nil, &SessionConfigError{
			Message: "session key is too weak for production; provide ≥32 random chars (not the default dev key)",
		}
	}
	if !secure && isWeak {
		logger.Warn("session key is weak; 32+ random chars required in production",
			zap.Int("length", len(sessionKey)))
	}

	if name == "" {
		name = "southportlocal-session"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		// Lax allows top-level navigations while blocking cross-site POSTs.
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session manager initialized",
		zap.Bool("secure", secure),
		zap.String("name", name),
		zap.String("domain", domain))

	return &SessionManager{store: store, logger: logger, name: name}, nil
}

// SessionName returns the configured session cookie name.
func (sm *SessionManager) SessionName() string {
	return sm.name
}

// CheckPassword compares a bcrypt hash against a candidate password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash for storing in configuration.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SignIn establishes an admin session.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, email string) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sess, _ = sm.store.New(r, sm.name)
	}

	sess.Values[isAuthKey] = true
	sess.Values[adminEmailKey] = email
	return sess.Save(r, w)
}

// SignOut terminates the admin session.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return
	}

	sess.Values[isAuthKey] = false
	delete(sess.Values, adminEmailKey)
	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
}

// CurrentAdmin returns the admin & "found?" flag from the request context.
func CurrentAdmin(r *http.Request) (*Admin, bool) {
	a, ok := r.Context().Value(currentAdminKey).(*Admin)
	return a, ok
}

// LoadAdmin returns middleware that injects the admin into context when the
// session cookie is valid. Invalid cookies start a fresh anonymous session.
func (sm *SessionManager) LoadAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.store.Get(r, sm.name)
		if err != nil {
			sm.logSessionError(err, r)
		}

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			email, _ := sess.Values[adminEmailKey].(string)
			r = withAdmin(r, &Admin{Email: email})
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin returns middleware that ensures the operator is signed in.
// Browsers are redirected to the login form with a return path; other
// callers get a plain 401.
func (sm *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentAdmin(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		if wantsHTML(r) {
			ret := url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, "/admin/login?return="+ret, http.StatusSeeOther)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

func withAdmin(r *http.Request, a *Admin) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentAdminKey, a))
}

// WithTestAdmin injects an admin into the request context for testing.
func WithTestAdmin(r *http.Request, a *Admin) *http.Request {
	return withAdmin(r, a)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// logSessionError keeps cookie failures at the right severity: expiry is
// routine, a bad MAC is worth a warning.
func (sm *SessionManager) logSessionError(err error, r *http.Request) {
	errStr := strings.ToLower(err.Error())

	if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
		switch {
		case strings.Contains(errStr, "expired timestamp"):
			sm.logger.Debug("session expired, starting fresh session",
				zap.String("path", r.URL.Path))
		case strings.Contains(errStr, "mac") || strings.Contains(errStr, "hash"):
			sm.logger.Warn("session MAC validation failed (possible tampering)",
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr))
		default:
			sm.logger.Info("session decode failed, starting fresh session",
				zap.String("path", r.URL.Path))
		}
		return
	}

	sm.logger.Warn("session error, starting fresh session",
		zap.Error(err),
		zap.String("path", r.URL.Path))
}

// isDefaultKey checks if the session key appears to be a placeholder value.
func isDefaultKey(key string) bool {
	lower := strings.ToLower(key)
	patterns := []string{
		"dev-only",
		"change-me",
		"placeholder",
		"default",
		"example",
		"insecure",
		"test-key",
		"secret123",
		"password",
	}
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
