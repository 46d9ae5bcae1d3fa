// Package ranking orders businesses for display. The order is total and
// deterministic: listing tier first, then a popularity score within the tier,
// then name as the final tie-break.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// tierRank maps listing tiers to sort precedence; lower ranks first.
// Unrecognized tiers sort after every known tier.
var tierRank = map[string]int{
	models.TierPremium:  0,
	models.TierFeatured: 1,
	models.TierStandard: 2,
	models.TierFree:     3,
}

const unknownTierRank = 4

// TierRank returns the precedence rank for a listing tier.
func TierRank(tier string) int {
	if r, ok := tierRank[tier]; ok {
		return r
	}
	return unknownTierRank
}

// Score is the popularity score used within a tier: rating × ln(reviews+1).
// Missing rating or review count contributes zero.
func Score(rating float64, reviewCount int) float64 {
	if reviewCount < 0 {
		reviewCount = 0
	}
	return rating * math.Log(float64(reviewCount)+1)
}

// ScoreBusiness computes the popularity score for a business, treating absent
// rating/review fields as zero.
func ScoreBusiness(b models.Business) float64 {
	return Score(b.RatingValue(), b.ReviewCountValue())
}

// Sort orders businesses in place: tier precedence ascending, popularity score
// descending, then name ascending. Stable under re-computation for identical
// input snapshots.
func Sort(businesses []models.Business) {
	sort.SliceStable(businesses, func(i, j int) bool {
		return Less(businesses[i], businesses[j])
	})
}

// Sorted returns a ranked copy, leaving the input untouched.
func Sorted(businesses []models.Business) []models.Business {
	out := make([]models.Business, len(businesses))
	copy(out, businesses)
	Sort(out)
	return out
}

// Less reports whether a ranks ahead of b.
func Less(a, b models.Business) bool {
	ra, rb := TierRank(a.ListingTier), TierRank(b.ListingTier)
	if ra != rb {
		return ra < rb
	}
	sa, sb := ScoreBusiness(a), ScoreBusiness(b)
	if sa != sb {
		return sa > sb
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}
