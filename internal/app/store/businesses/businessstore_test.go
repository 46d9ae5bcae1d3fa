package businessstore

import (
	"sort"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/seftonweb/southportlocal/internal/testutil"
)

func sample(slug, category string, tags ...string) models.Business {
	b := models.Business{
		Slug:         slug,
		Name:         "Business " + slug,
		CategoryID:   primitive.NewObjectID(),
		CategorySlug: category,
		ListingTier:  models.TierFree,
	}
	b.Tags = tags
	return b
}

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_Upsert_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rating := 4.6
	reviews := 87
	b := models.Business{
		Slug:             "the-bold-hotel",
		Name:             "The Bold Hotel",
		ShortDescription: "Lord Street hotel and bar",
		Address:          "583 Lord Street",
		Postcode:         "PR9 0BE",
		Phone:            "01704 000000",
		Website:          "https://example.com",
		ListingTier:      models.TierPremium,
		Featured:         true,
		PriceRange:       models.PriceExpensive,
		Rating:           &rating,
		ReviewCount:      &reviews,
		CategoryID:       primitive.NewObjectID(),
		CategorySlug:     models.CategoryAccommodation,
	}

	if err := store.Upsert(ctx, b); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := store.GetBySlug(ctx, "the-bold-hotel")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Name != b.Name {
		t.Errorf("Name = %v, want %v", got.Name, b.Name)
	}
	if got.ListingTier != models.TierPremium {
		t.Errorf("ListingTier = %v, want premium", got.ListingTier)
	}
	if got.RatingValue() != rating {
		t.Errorf("Rating = %v, want %v", got.RatingValue(), rating)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on insert")
	}
	if got.UpdatedAt == nil {
		t.Error("UpdatedAt should be set")
	}
}

func TestStore_Upsert_UpdateKeepsTags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b := sample("corner-cafe", models.CategoryCafes)
	if err := store.Upsert(ctx, b); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.AddTags(ctx, "corner-cafe", []string{models.TagDogFriendly}); err != nil {
		t.Fatalf("AddTags() error = %v", err)
	}

	// Re-import the same record; classifier tags must survive.
	b.Name = "Corner Café (renamed)"
	if err := store.Upsert(ctx, b); err != nil {
		t.Fatalf("Upsert() update error = %v", err)
	}

	got, err := store.GetBySlug(ctx, "corner-cafe")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Name != "Corner Café (renamed)" {
		t.Errorf("Name = %v, want renamed", got.Name)
	}
	if !got.HasTag(models.TagDogFriendly) {
		t.Error("tags should survive a re-import upsert")
	}

	// Still exactly one record under the slug.
	all, _ := store.GetAll(ctx)
	if len(all) != 1 {
		t.Errorf("expected 1 business, got %d", len(all))
	}
}

func TestStore_GetBySlug_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetBySlug(ctx, "nonexistent")
	if err != mongo.ErrNoDocuments {
		t.Errorf("GetBySlug() error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_ListByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store.Upsert(ctx, sample("cafe-one", models.CategoryCafes))
	store.Upsert(ctx, sample("cafe-two", models.CategoryCafes))
	store.Upsert(ctx, sample("pub-one", models.CategoryPubsBars))

	got, err := store.ListByCategory(ctx, models.CategoryCafes)
	if err != nil {
		t.Fatalf("ListByCategory() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListByCategory() count = %d, want 2", len(got))
	}
	for _, b := range got {
		if b.CategorySlug != models.CategoryCafes {
			t.Errorf("unexpected category %q", b.CategorySlug)
		}
	}
}

func TestStore_ListByTags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store.Upsert(ctx, sample("a", models.CategoryCafes))
	store.AddTags(ctx, "a", []string{models.TagDogFriendly})
	store.Upsert(ctx, sample("b", models.CategoryPubsBars))
	store.AddTags(ctx, "b", []string{models.TagDogFriendly, models.TagLiveMusic})
	store.Upsert(ctx, sample("c", models.CategoryShopping))

	// Any category
	got, err := store.ListByTags(ctx, []string{models.TagDogFriendly}, nil)
	if err != nil {
		t.Fatalf("ListByTags() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListByTags() count = %d, want 2", len(got))
	}

	// Restricted to pubs
	got, err = store.ListByTags(ctx, []string{models.TagDogFriendly}, []string{models.CategoryPubsBars})
	if err != nil {
		t.Fatalf("ListByTags() restricted error = %v", err)
	}
	if len(got) != 1 || got[0].Slug != "b" {
		t.Errorf("restricted ListByTags() = %v, want only b", got)
	}
}

func TestStore_AddTags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store.Upsert(ctx, sample("tagged", models.CategoryCafes))

	if err := store.AddTags(ctx, "tagged", []string{models.TagVegan, models.TagDogFriendly}); err != nil {
		t.Fatalf("AddTags() error = %v", err)
	}
	// Second call with an overlap must not duplicate.
	if err := store.AddTags(ctx, "tagged", []string{models.TagVegan, models.TagNearBeach}); err != nil {
		t.Fatalf("AddTags() second error = %v", err)
	}

	got, _ := store.GetBySlug(ctx, "tagged")
	sort.Strings(got.Tags)
	want := []string{models.TagDogFriendly, models.TagNearBeach, models.TagVegan}
	sort.Strings(want)
	if len(got.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", got.Tags, want)
	}
	for i := range want {
		if got.Tags[i] != want[i] {
			t.Errorf("Tags = %v, want %v", got.Tags, want)
			break
		}
	}
}

func TestStore_AddTags_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// No-op, even for a slug that does not exist.
	if err := store.AddTags(ctx, "missing", nil); err != nil {
		t.Errorf("AddTags() with no tags should be a no-op, got %v", err)
	}
}

func TestStore_AddTags_MissingSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.AddTags(ctx, "missing", []string{models.TagVegan})
	if err != mongo.ErrNoDocuments {
		t.Errorf("AddTags() error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_SetPhoto(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b := sample("photogenic", models.CategoryThingsToDo)
	b.GooglePlaceID = "place-123"
	store.Upsert(ctx, b)

	if err := store.SetPhoto(ctx, "photogenic", "https://img.example.com/1.jpg"); err != nil {
		t.Fatalf("SetPhoto() error = %v", err)
	}

	got, _ := store.GetBySlug(ctx, "photogenic")
	if !got.HasImage() {
		t.Error("business should have an image after SetPhoto")
	}

	if err := store.SetPhoto(ctx, "missing", "https://img.example.com/2.jpg"); err != mongo.ErrNoDocuments {
		t.Errorf("SetPhoto() for missing slug error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_ListMissingPhotos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	withPlace := sample("needs-photo", models.CategoryCafes)
	withPlace.GooglePlaceID = "place-a"
	store.Upsert(ctx, withPlace)

	noPlace := sample("no-place-id", models.CategoryCafes)
	store.Upsert(ctx, noPlace)

	done := sample("has-photo", models.CategoryCafes)
	done.GooglePlaceID = "place-b"
	store.Upsert(ctx, done)
	store.SetPhoto(ctx, "has-photo", "https://img.example.com/x.jpg")

	got, err := store.ListMissingPhotos(ctx, 10)
	if err != nil {
		t.Fatalf("ListMissingPhotos() error = %v", err)
	}
	if len(got) != 1 || got[0].Slug != "needs-photo" {
		t.Errorf("ListMissingPhotos() = %v, want only needs-photo", got)
	}
}

func TestStore_CountByTag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store.Upsert(ctx, sample("a", models.CategoryCafes))
	store.AddTags(ctx, "a", []string{models.TagDogFriendly, models.TagNearBeach})
	store.Upsert(ctx, sample("b", models.CategoryPubsBars))
	store.AddTags(ctx, "b", []string{models.TagDogFriendly})
	store.Upsert(ctx, sample("untagged", models.CategoryShopping))

	counts, err := store.CountByTag(ctx, nil)
	if err != nil {
		t.Fatalf("CountByTag() error = %v", err)
	}
	if counts[models.TagDogFriendly] != 2 {
		t.Errorf("dog-friendly count = %d, want 2", counts[models.TagDogFriendly])
	}
	if counts[models.TagNearBeach] != 1 {
		t.Errorf("near-beach count = %d, want 1", counts[models.TagNearBeach])
	}

	// Category-restricted counts
	counts, err = store.CountByTag(ctx, []string{models.CategoryCafes})
	if err != nil {
		t.Fatalf("CountByTag() restricted error = %v", err)
	}
	if counts[models.TagDogFriendly] != 1 {
		t.Errorf("restricted dog-friendly count = %d, want 1", counts[models.TagDogFriendly])
	}
}

func TestStore_CountByCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store.Upsert(ctx, sample("a", models.CategoryCafes))
	store.Upsert(ctx, sample("b", models.CategoryCafes))
	store.Upsert(ctx, sample("c", models.CategoryPubsBars))

	counts, err := store.CountByCategory(ctx)
	if err != nil {
		t.Fatalf("CountByCategory() error = %v", err)
	}
	if counts[models.CategoryCafes] != 2 {
		t.Errorf("cafes count = %d, want 2", counts[models.CategoryCafes])
	}
	if counts[models.CategoryPubsBars] != 1 {
		t.Errorf("pubs-bars count = %d, want 1", counts[models.CategoryPubsBars])
	}
}

func TestStore_ListFeatured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := sample("star", models.CategoryRestaurants)
	f.Featured = true
	store.Upsert(ctx, f)
	store.Upsert(ctx, sample("ordinary", models.CategoryRestaurants))

	got, err := store.ListFeatured(ctx, 10)
	if err != nil {
		t.Fatalf("ListFeatured() error = %v", err)
	}
	if len(got) != 1 || got[0].Slug != "star" {
		t.Errorf("ListFeatured() = %v, want only star", got)
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.Exists(ctx, "anything")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() should be false before insert")
	}

	store.Upsert(ctx, sample("anything", models.CategoryServices))

	exists, _ = store.Exists(ctx, "anything")
	if !exists {
		t.Error("Exists() should be true after insert")
	}
}
