package ranking

import (
	"math"
	"testing"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

func ptrF(f float64) *float64 { return &f }
func ptrI(i int) *int         { return &i }

func biz(name, tier string, rating float64, reviews int) models.Business {
	return models.Business{
		Name:        name,
		ListingTier: tier,
		Rating:      ptrF(rating),
		ReviewCount: ptrI(reviews),
	}
}

func TestTierRank(t *testing.T) {
	tests := []struct {
		tier string
		want int
	}{
		{models.TierPremium, 0},
		{models.TierFeatured, 1},
		{models.TierStandard, 2},
		{models.TierFree, 3},
		{"sponsored", 4}, // unrecognized sorts last
		{"", 4},
	}
	for _, tt := range tests {
		if got := TierRank(tt.tier); got != tt.want {
			t.Errorf("TierRank(%q) = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	// score = rating × ln(reviews+1)
	got := Score(4.8, 120)
	want := 4.8 * math.Log(121)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score(4.8, 120) = %f, want %f", got, want)
	}

	if Score(0, 500) != 0 {
		t.Errorf("zero rating should score zero")
	}
	if Score(4.5, 0) != 0 {
		t.Errorf("zero reviews should score zero (ln 1 = 0)")
	}
	if Score(4.5, -3) != 0 {
		t.Errorf("negative reviews should be treated as zero")
	}
}

func TestScoreBusinessMissingFields(t *testing.T) {
	b := models.Business{Name: "No Reputation"}
	if got := ScoreBusiness(b); got != 0 {
		t.Errorf("ScoreBusiness with nil rating/reviews = %f, want 0", got)
	}
}

func TestPremiumAlwaysBeforeFeatured(t *testing.T) {
	// A premium listing with no reviews still outranks a stellar featured one.
	premium := biz("Quiet Premium", models.TierPremium, 0, 0)
	featured := biz("Popular Featured", models.TierFeatured, 5.0, 2000)

	got := Sorted([]models.Business{featured, premium})
	if got[0].Name != "Quiet Premium" {
		t.Errorf("premium should sort before featured regardless of score, got %q first", got[0].Name)
	}
}

func TestScoreOrderingWithinTier(t *testing.T) {
	// Worked example: A(4.8, 120) ≈ 23.0, B(4.2, 900) ≈ 28.6.
	// B ranks above A despite the lower rating.
	a := biz("Alpha Bistro", models.TierFeatured, 4.8, 120)
	b := biz("Busy Brasserie", models.TierFeatured, 4.2, 900)

	got := Sorted([]models.Business{a, b})
	if got[0].Name != "Busy Brasserie" {
		t.Errorf("higher rating×ln(reviews+1) should rank first, got %q", got[0].Name)
	}
}

func TestNameTieBreak(t *testing.T) {
	a := biz("Zebra Café", models.TierStandard, 4.0, 50)
	b := biz("Acorn Café", models.TierStandard, 4.0, 50)

	got := Sorted([]models.Business{a, b})
	if got[0].Name != "Acorn Café" {
		t.Errorf("equal tier and score should break ties by name ascending, got %q", got[0].Name)
	}
}

func TestSortDeterministic(t *testing.T) {
	in := []models.Business{
		biz("C", models.TierStandard, 3.5, 10),
		biz("A", models.TierPremium, 1.0, 1),
		biz("B", models.TierFeatured, 4.9, 300),
		{Name: "Unknown Tier", ListingTier: "mystery"},
	}

	first := Sorted(in)
	second := Sorted(in)
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("ranking not deterministic at index %d: %q vs %q", i, first[i].Name, second[i].Name)
		}
	}

	if first[len(first)-1].Name != "Unknown Tier" {
		t.Errorf("unrecognized tier should sort last, got %q", first[len(first)-1].Name)
	}
}

func TestSortedLeavesInputUntouched(t *testing.T) {
	in := []models.Business{
		biz("B", models.TierStandard, 1, 1),
		biz("A", models.TierPremium, 1, 1),
	}
	_ = Sorted(in)
	if in[0].Name != "B" {
		t.Errorf("Sorted should not mutate its input")
	}
}

func TestSortEmpty(t *testing.T) {
	got := Sorted(nil)
	if len(got) != 0 {
		t.Errorf("empty input should yield empty output")
	}
}
