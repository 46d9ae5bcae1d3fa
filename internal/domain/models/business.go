package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Business is a single directory listing. The slug is the only identifier
// exposed in URLs; pages live at /<category-slug>/<business-slug>.
type Business struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug string             `bson:"slug" json:"slug"`
	Name string             `bson:"name" json:"name"`

	// Descriptive fields
	ShortDescription string   `bson:"short_description,omitempty" json:"short_description,omitempty"`
	LongDescription  string   `bson:"long_description,omitempty" json:"long_description,omitempty"` // rich text, sanitized at render time
	Address          string   `bson:"address,omitempty" json:"address,omitempty"`
	Postcode         string   `bson:"postcode,omitempty" json:"postcode,omitempty"`
	Latitude         *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude        *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Phone            string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Website          string   `bson:"website,omitempty" json:"website,omitempty"`
	ImageURLs        []string `bson:"image_urls,omitempty" json:"image_urls,omitempty"`

	// External place identifier used by the photo fetcher.
	GooglePlaceID string `bson:"google_place_id,omitempty" json:"google_place_id,omitempty"`

	// Commercial placement
	ListingTier string `bson:"listing_tier" json:"listing_tier"` // see TierX constants
	Featured    bool   `bson:"featured" json:"featured"`
	PriceRange  string `bson:"price_range,omitempty" json:"price_range,omitempty"` // "£".."££££"

	// Reputation. Nil means "not yet rated" and ranks as zero.
	Rating      *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	ReviewCount *int     `bson:"review_count,omitempty" json:"review_count,omitempty"`

	// Classification
	CategoryID   primitive.ObjectID `bson:"category_id" json:"category_id"`
	CategorySlug string             `bson:"category_slug" json:"category_slug"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Listing tiers, in display precedence order. Premium listings always sort
// ahead of featured, which sort ahead of standard and free.
const (
	TierPremium  = "premium"
	TierFeatured = "featured"
	TierStandard = "standard"
	TierFree     = "free"
)

// AllListingTiers returns the valid tiers in precedence order.
func AllListingTiers() []string {
	return []string{TierPremium, TierFeatured, TierStandard, TierFree}
}

// IsValidListingTier checks if a tier value is recognized.
func IsValidListingTier(tier string) bool {
	for _, t := range AllListingTiers() {
		if t == tier {
			return true
		}
	}
	return false
}

// Price range values, cheapest first.
const (
	PriceBudget    = "£"
	PriceModerate  = "££"
	PriceExpensive = "£££"
	PriceLuxury    = "££££"
)

// AllPriceRanges returns the valid price range values in ascending order.
func AllPriceRanges() []string {
	return []string{PriceBudget, PriceModerate, PriceExpensive, PriceLuxury}
}

// IsValidPriceRange checks if a price range value is recognized.
func IsValidPriceRange(pr string) bool {
	for _, p := range AllPriceRanges() {
		if p == pr {
			return true
		}
	}
	return false
}

// HasTag reports whether the business carries the given tag.
func (b *Business) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasImage reports whether at least one image URL is stored.
func (b *Business) HasImage() bool {
	return len(b.ImageURLs) > 0
}

// RatingValue returns the rating, or zero when absent.
func (b *Business) RatingValue() float64 {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

// ReviewCountValue returns the review count, or zero when absent.
func (b *Business) ReviewCountValue() int {
	if b.ReviewCount == nil {
		return 0
	}
	return *b.ReviewCount
}
