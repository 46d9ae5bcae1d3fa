package collections

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

type fakeCounter struct {
	counts map[string]int
	err    error
}

func (f *fakeCounter) CountByTag(_ context.Context, _ []string) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

func defs() []models.Collection {
	return []models.Collection{
		{Slug: "dog-friendly-southport", Title: "Dog-Friendly Southport", Tags: []string{models.TagDogFriendly}, MinListings: 5, Priority: 10},
		{Slug: "sea-view-dining", Title: "Sea View Dining", Tags: []string{models.TagSeaView, models.TagNearBeach}, MinListings: 8, Priority: 20},
	}
}

func TestResolveThreshold(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		models.TagDogFriendly: 5,
		models.TagSeaView:     2,
		models.TagNearBeach:   3,
	}}

	p := Resolve(context.Background(), defs(), counter, zap.NewNop())

	if len(p.Live) != 1 || p.Live[0].Collection.Slug != "dog-friendly-southport" {
		t.Fatalf("Live = %+v, want dog-friendly-southport only", p.Live)
	}
	if p.Live[0].Count != 5 {
		t.Errorf("live count = %d, want 5", p.Live[0].Count)
	}
	if len(p.ComingSoon) != 1 || p.ComingSoon[0].Collection.Slug != "sea-view-dining" {
		t.Fatalf("ComingSoon = %+v, want sea-view-dining only", p.ComingSoon)
	}
	// 2 + 3 falls short of the minimum of 8.
	if p.ComingSoon[0].Count != 5 {
		t.Errorf("coming-soon count = %d, want 5", p.ComingSoon[0].Count)
	}
}

func TestResolveSumsAcrossTags(t *testing.T) {
	// The per-tag sum can cross the threshold even when individual tags do not.
	counter := &fakeCounter{counts: map[string]int{
		models.TagSeaView:   4,
		models.TagNearBeach: 4,
	}}
	def := models.Collection{Slug: "sea", Title: "Sea", Tags: []string{models.TagSeaView, models.TagNearBeach}, MinListings: 8}

	st := ResolveOne(context.Background(), def, counter, zap.NewNop())
	if !st.Live || st.Count != 8 {
		t.Errorf("Status = %+v, want live with count 8", st)
	}
}

func TestResolveFailsClosed(t *testing.T) {
	counter := &fakeCounter{err: errors.New("aggregation unavailable")}

	p := Resolve(context.Background(), defs(), counter, zap.NewNop())

	if len(p.Live) != 0 {
		t.Errorf("counter failure should leave no collections live, got %+v", p.Live)
	}
	if len(p.ComingSoon) != len(defs()) {
		t.Errorf("all collections should fall back to coming soon, got %d", len(p.ComingSoon))
	}
	for _, st := range p.ComingSoon {
		if st.Count != 0 {
			t.Errorf("collection %q count = %d, want 0 on failure", st.Collection.Slug, st.Count)
		}
	}
}

func TestResolveOrdersByPriority(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		models.TagDogFriendly: 100,
		models.TagSeaView:     100,
		models.TagNearBeach:   100,
	}}

	p := Resolve(context.Background(), defs(), counter, zap.NewNop())

	if len(p.Live) != 2 {
		t.Fatalf("expected both collections live, got %d", len(p.Live))
	}
	if p.Live[0].Collection.Slug != "sea-view-dining" {
		t.Errorf("higher priority collection should order first, got %q", p.Live[0].Collection.Slug)
	}
}

func TestResolveTitleTieBreak(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{models.TagVegan: 9}}
	same := []models.Collection{
		{Slug: "z", Title: "Zeta", Tags: []string{models.TagVegan}, MinListings: 1, Priority: 5},
		{Slug: "a", Title: "Alpha", Tags: []string{models.TagVegan}, MinListings: 1, Priority: 5},
	}

	p := Resolve(context.Background(), same, counter, zap.NewNop())
	if p.Live[0].Collection.Title != "Alpha" {
		t.Errorf("equal priority should order by title, got %q first", p.Live[0].Collection.Title)
	}
}

func TestDefaultCollectionsResolve(t *testing.T) {
	// Nothing in the catalog yet: everything ships as coming soon.
	counter := &fakeCounter{counts: map[string]int{}}

	p := Resolve(context.Background(), models.DefaultCollections, counter, zap.NewNop())
	if len(p.Live) != 0 {
		t.Errorf("empty catalog should have no live collections, got %+v", p.Live)
	}
	if len(p.ComingSoon) != len(models.DefaultCollections) {
		t.Errorf("ComingSoon = %d, want %d", len(p.ComingSoon), len(models.DefaultCollections))
	}
}
