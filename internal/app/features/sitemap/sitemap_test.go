package sitemap

import (
	"net/http"
	"strings"
	"testing"

	errorsfeature "github.com/seftonweb/southportlocal/internal/app/features/errors"
	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	"github.com/seftonweb/southportlocal/internal/app/system/seeding"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/seftonweb/southportlocal/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestRouter(db *mongo.Database) http.Handler {
	logger := zap.NewNop()
	return Routes(NewHandler(db, errorsfeature.NewErrorLogger(logger), logger))
}

func TestSitemap_ListsCoreAndSeededURLs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := seeding.SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}
	store := businessstore.New(db)
	if err := store.Upsert(ctx, models.Business{
		Slug: "pier-pavilion-cafe", Name: "Pier Pavilion Cafe",
		CategorySlug: models.CategoryCafes, ListingTier: models.TierFree,
	}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	router := newTestRouter(db)
	req := testutil.NewRequest(http.MethodGet, "/sitemap.xml")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "<urlset")
	rec.AssertContains(t, "/restaurants")
	rec.AssertContains(t, "/cafes/pier-pavilion-cafe")
	rec.AssertContains(t, "/guides/weekend-in-southport")
}

func TestSitemap_OmitsComingSoonCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)

	router := newTestRouter(db)
	req := testutil.NewRequest(http.MethodGet, "/sitemap.xml")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	body := rec.Body.String()
	if strings.Contains(body, "/collections/live-music-venues") {
		t.Error("coming-soon collection URL should not appear in sitemap")
	}
	if strings.Contains(body, "/the-open-accommodation") {
		t.Error("coming-soon event page should not appear in sitemap")
	}
}

func TestRobots(t *testing.T) {
	db := testutil.SetupTestDB(t)

	router := newTestRouter(db)
	req := testutil.NewRequest(http.MethodGet, "/robots.txt")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Disallow: /admin/")
	rec.AssertContains(t, "Sitemap:")
}
