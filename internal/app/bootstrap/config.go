// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "SOUTHPORT"

// appConfigKeys declares every app setting. WAFFLE resolves each from flags,
// SOUTHPORT_* environment variables, config files, then the default here.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "southportlocal", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "southportlocal-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie max age (e.g., 24h, 720h, 30m)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	// Operator account (the single admin; no users collection)
	{Name: "admin_email", Default: "", Desc: "Operator sign-in email (admin area is unusable until set)"},
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the operator password (generate with southportctl hash-password)"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@southportlocal.co.uk", Desc: "From email address"},
	{Name: "mail_from_name", Default: "Southport Local", Desc: "From display name"},

	// Contact form
	{Name: "contact_to_email", Default: "", Desc: "Where enquiry notifications are sent (blank disables notification mail)"},
	{Name: "contact_retention", Default: "2160h", Desc: "How long stored enquiries are kept (default 90 days)"},

	// Google Places
	{Name: "places_api_key", Default: "", Desc: "Google Places API key for the photo sweep (blank disables it)"},

	// Site identity
	{Name: "site_name", Default: "Southport Local", Desc: "Site display name used in titles and email copy"},
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Canonical base URL for links and the sitemap"},
}

// LoadConfig resolves core and app configuration. Runs before any backend
// is dialed; core settings use the WAFFLE_ prefix, app settings SOUTHPORT_.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		CSRFKey: appValues.String("csrf_key"),

		AdminEmail:        appValues.String("admin_email"),
		AdminPasswordHash: appValues.String("admin_password_hash"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		ContactToEmail:   appValues.String("contact_to_email"),
		ContactRetention: appValues.Duration("contact_retention", 90*24*time.Hour),

		PlacesAPIKey: appValues.String("places_api_key"),

		SiteName: appValues.String("site_name"),
		BaseURL:  appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects configurations the site cannot run on. Anything
// merely inconvenient is a warning instead.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	// An email without a hash (or vice versa) means the operator can never
	// sign in; catch the half-configured state at boot rather than at 2am.
	if (appCfg.AdminEmail == "") != (appCfg.AdminPasswordHash == "") {
		return fmt.Errorf("admin_email and admin_password_hash must be set together")
	}
	if appCfg.AdminEmail == "" {
		if coreCfg.Env == "prod" {
			return fmt.Errorf("admin_email and admin_password_hash are required in prod")
		}
		logger.Warn("no operator account configured; /admin sign-in is disabled")
	}

	if appCfg.ContactToEmail == "" {
		logger.Warn("contact_to_email not set; enquiries will be stored but not emailed")
	}

	return nil
}
