package admin

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	errorsfeature "github.com/seftonweb/southportlocal/internal/app/features/errors"
	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	"github.com/seftonweb/southportlocal/internal/app/system/auth"
	"github.com/seftonweb/southportlocal/internal/app/system/seeding"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/seftonweb/southportlocal/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const testPassword = "correct-horse-battery"

func newTestRouter(t *testing.T, db *mongo.Database) http.Handler {
	t.Helper()
	logger := zap.NewNop()

	sessionMgr, err := auth.NewSessionManager(
		"0123456789abcdef0123456789abcdef", "test-session", "", time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager() error = %v", err)
	}

	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	h := NewHandler(db, sessionMgr, errorsfeature.NewErrorLogger(logger), testutil.AdminEmail, hash, logger)
	return Routes(h)
}

func TestShowLogin(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	router := newTestRouter(t, db)

	req := testutil.NewRequest(http.MethodGet, "/login")
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `name="password"`)
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	router := newTestRouter(t, db)

	req := testutil.NewFormRequest("/login", url.Values{
		"email":    {testutil.AdminEmail},
		"password": {"wrong"},
	})
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, "Incorrect email or password.")
}

func TestHandleLogin_Success(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	router := newTestRouter(t, db)

	req := testutil.NewFormRequest("/login", url.Values{
		"email":    {testutil.AdminEmail},
		"password": {testPassword},
	})
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin")
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Error("successful login should set a session cookie")
	}
}

func TestDashboard_RequiresAdmin(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	router := newTestRouter(t, db)

	req := testutil.NewRequest(http.MethodGet, "/")
	req.Header.Set("Accept", "text/html")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestDashboard_SignedIn(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	router := newTestRouter(t, db)

	req := testutil.NewAdminRequest(http.MethodGet, "/")
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Dashboard")
}

func TestListBusinesses(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := businessstore.New(db).Upsert(ctx, models.Business{
		Slug: "marine-lake-cafe", Name: "Marine Lake Cafe",
		CategorySlug: models.CategoryCafes, ListingTier: models.TierStandard,
	}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	router := newTestRouter(t, db)
	req := testutil.NewAdminRequestWithCSRF(http.MethodGet, "/businesses")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Marine Lake Cafe")
}

func TestSaveBusiness_CreatesWithDerivedSlug(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := seeding.SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}

	router := newTestRouter(t, db)
	req := testutil.NewFormRequest("/businesses", url.Values{
		"name":          {"The Pier Tearoom & Grill"},
		"category_slug": {models.CategoryCafes},
		"listing_tier":  {models.TierStandard},
		"postcode":      {"pr8 1qx"},
	})
	req = auth.WithTestAdmin(req, &auth.Admin{Email: testutil.AdminEmail})
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertRedirect(t, "/admin/businesses")

	biz, err := businessstore.New(db).GetBySlug(ctx, "the-pier-tearoom-and-grill")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if biz.Postcode != "PR8 1QX" {
		t.Errorf("postcode = %q, want normalized %q", biz.Postcode, "PR8 1QX")
	}
}

func TestSaveBusiness_InvalidTierRejected(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)

	router := newTestRouter(t, db)
	req := testutil.NewFormRequest("/businesses", url.Values{
		"name":          {"Somewhere"},
		"category_slug": {models.CategoryCafes},
		"listing_tier":  {"platinum"},
	})
	req = auth.WithTestAdmin(req, &auth.Admin{Email: testutil.AdminEmail})
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestSaveBusiness_DuplicateNameRejected(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := businessstore.New(db).Upsert(ctx, models.Business{
		Slug: "the-fox", Name: "The Fox",
		CategorySlug: models.CategoryPubsBars, ListingTier: models.TierFree,
	}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	router := newTestRouter(t, db)
	req := testutil.NewFormRequest("/businesses", url.Values{
		"name":          {"The Fox"},
		"category_slug": {models.CategoryPubsBars},
		"listing_tier":  {models.TierFree},
	})
	req = auth.WithTestAdmin(req, &auth.Admin{Email: testutil.AdminEmail})
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "already exists")
}
