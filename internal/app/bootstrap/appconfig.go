// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig is everything specific to this site: the MongoDB connection, the
// single operator account, SMTP for contact mail, and the Google Places key
// for the photo sweep. Framework-level settings (ports, TLS, log level,
// CORS) live in WAFFLE's CoreConfig, not here. Values are resolved in
// LoadConfig from flags, environment and config files.
type AppConfig struct {
	// MongoDB connection
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Operator sign-in cookie
	SessionKey    string        // signing secret, must be strong in production
	SessionName   string        // cookie name
	SessionDomain string        // blank means current host
	SessionMaxAge time.Duration

	CSRFKey string // token signing secret, 32+ bytes in production

	// Operator account. The site has exactly one admin, configured here
	// rather than stored in the database.
	AdminEmail        string // Operator sign-in email
	AdminPasswordHash string // bcrypt hash of the operator password

	// SMTP for outbound mail. Local dev points at Mailpit on 1025 with no
	// credentials; production points at SES on 587.
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string
	MailFromName string

	// Contact form
	ContactToEmail   string        // where enquiry notifications go; blank disables mail
	ContactRetention time.Duration // how long stored enquiries are kept

	PlacesAPIKey string // Google Places key for the photo sweep; blank disables it

	// Site identity
	SiteName string // display name used in page titles and email copy
	BaseURL  string // canonical base for links, sitemap entries and email links
}
