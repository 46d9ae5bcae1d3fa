// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"
	"time"

	adminfeature "github.com/seftonweb/southportlocal/internal/app/features/admin"
	blogfeature "github.com/seftonweb/southportlocal/internal/app/features/blog"
	collectionsfeature "github.com/seftonweb/southportlocal/internal/app/features/collectionpages"
	contactfeature "github.com/seftonweb/southportlocal/internal/app/features/contact"
	directoryfeature "github.com/seftonweb/southportlocal/internal/app/features/directory"
	errorsfeature "github.com/seftonweb/southportlocal/internal/app/features/errors"
	eventsfeature "github.com/seftonweb/southportlocal/internal/app/features/events"
	guidesfeature "github.com/seftonweb/southportlocal/internal/app/features/guides"
	healthfeature "github.com/seftonweb/southportlocal/internal/app/features/health"
	homefeature "github.com/seftonweb/southportlocal/internal/app/features/home"
	sitemapfeature "github.com/seftonweb/southportlocal/internal/app/features/sitemap"
	appresources "github.com/seftonweb/southportlocal/internal/app/resources"
	categorystore "github.com/seftonweb/southportlocal/internal/app/store/categories"
	"github.com/seftonweb/southportlocal/internal/app/system/auth"
	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler assembles the root router. WAFFLE calls it once, after
// config, ConnectDB, EnsureSchema and Startup have all completed.
//
// Route layout matters here: fixed paths (/collections, /guides, /blog,
// /contact, /admin, the event page, sitemap and robots) are registered
// first, and the directory's /{category} and /{category}/{business}
// patterns go on the root router last so they only see paths nothing else
// claimed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies in production only; dev runs over plain http.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Initialize viewdata with the site identity used on every page.
	viewdata.Init(appCfg.SiteName, appCfg.BaseURL)

	// Set up the navigation loader so BaseVM carries the category menu.
	catStore := categorystore.New(deps.MongoDatabase)
	viewdata.SetNavLoader(func(ctx context.Context) []viewdata.NavCategory {
		cats, err := catStore.GetAll(ctx)
		if err != nil {
			logger.Warn("failed to load navigation categories", zap.Error(err))
			return nil
		}
		nav := make([]viewdata.NavCategory, len(cats))
		for i, c := range cats {
			nav[i] = viewdata.NavCategory{Slug: c.Slug, Name: c.Name}
		}
		return nav
	})

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Session middleware: loads the signed-in operator into context if present.
	// Public pages simply have no admin, which is fine.
	r.Use(sessionMgr.LoadAdmin)

	// CSRF protection middleware. Cookie name is "southportlocal_csrf" to
	// avoid collisions with other services on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("southportlocal_csrf"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...))

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Static assets with pre-compressed file support (gzip/brotli)
	// /static/* serves files from disk (static directory)
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// Error pages; NotFound doubles as the shared 404 for the directory,
	// collection, guide and blog handlers.
	errorsHandler := errorsfeature.NewHandler()

	// Home page
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, logger)
	r.Get("/", homeHandler.Index)

	// Curated collections (live or coming soon)
	collectionsHandler := collectionsfeature.NewHandler(deps.MongoDatabase, errLog, errorsHandler.NotFound, logger)
	r.Mount("/collections", collectionsfeature.Routes(collectionsHandler))

	// Editorial guides and blog
	guidesHandler := guidesfeature.NewHandler(errorsHandler.NotFound)
	r.Mount("/guides", guidesfeature.Routes(guidesHandler))

	blogHandler := blogfeature.NewHandler(errorsHandler.NotFound)
	r.Mount("/blog", blogfeature.Routes(blogHandler))

	// Event accommodation page (golf week)
	eventsHandler := eventsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/the-open-accommodation", eventsfeature.Routes(eventsHandler))

	// Sitemap and robots, served from the site root
	sitemapHandler := sitemapfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Get("/sitemap.xml", sitemapHandler.Sitemap)
	r.Get("/robots.txt", sitemapHandler.Robots)

	// Contact form (stores enquiries, emails the operator when configured)
	contactHandler := contactfeature.NewHandler(deps.MongoDatabase, deps.Mailer, appCfg.ContactToEmail, errLog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Admin area (single operator, session auth behind /admin)
	adminHandler := adminfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, appCfg.AdminEmail, appCfg.AdminPasswordHash, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	// Directory pages. Registered last so /{category} only matches paths no
	// fixed route claimed.
	directoryHandler := directoryfeature.NewHandler(deps.MongoDatabase, errLog, errorsHandler.NotFound, logger)
	r.Get("/{category}", directoryHandler.ShowCategory)
	r.Get("/{category}/{business}", directoryHandler.ShowBusiness)

	// 404 catch-all for unmatched routes
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
