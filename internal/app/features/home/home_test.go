package home

import (
	"net/http"
	"testing"

	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	"github.com/seftonweb/southportlocal/internal/app/system/seeding"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/seftonweb/southportlocal/internal/testutil"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := NewHandler(db, logger)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestIndex_EmptyDatabase(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)

	h := NewHandler(db, zap.NewNop())
	router := Routes(h)

	req := testutil.NewRequest(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
}

func TestIndex_ShowsSeededCategories(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := seeding.SeedAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}

	h := NewHandler(db, zap.NewNop())
	router := Routes(h)

	req := testutil.NewRequest(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Restaurants")
	rec.AssertContains(t, "/pubs-bars")
}

func TestIndex_FeaturedStrip(t *testing.T) {
	testutil.MustBootTemplates(t)
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := businessstore.New(db)
	if err := store.Upsert(ctx, models.Business{
		Slug:         "the-bold-hotel",
		Name:         "The Bold Hotel",
		CategorySlug: models.CategoryAccommodation,
		Featured:     true,
		ListingTier:  models.TierPremium,
	}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	h := NewHandler(db, zap.NewNop())
	router := Routes(h)

	req := testutil.NewRequest(http.MethodGet, "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "The Bold Hotel")
}
