// internal/app/store/businesses/businessstore.go
package businessstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// Store provides access to the businesses collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new business store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("businesses")}
}

// GetBySlug returns a business by its slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Business, error) {
	var b models.Business
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&b)
	if err != nil {
		return models.Business{}, err
	}
	return b, nil
}

// ListByCategory returns every business in a category. Ordering is left to
// the caller; directory pages rank in memory by tier and popularity.
func (s *Store) ListByCategory(ctx context.Context, categorySlug string) ([]models.Business, error) {
	cur, err := s.c.Find(ctx, bson.M{"category_slug": categorySlug})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var businesses []models.Business
	if err := cur.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

// ListByTags returns businesses carrying at least one of the given tags,
// optionally restricted to a set of categories.
func (s *Store) ListByTags(ctx context.Context, tags, categorySlugs []string) ([]models.Business, error) {
	filter := bson.M{"tags": bson.M{"$in": tags}}
	if len(categorySlugs) > 0 {
		filter["category_slug"] = bson.M{"$in": categorySlugs}
	}

	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var businesses []models.Business
	if err := cur.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

// ListFeatured returns featured businesses for the home page, capped at limit.
func (s *Store) ListFeatured(ctx context.Context, limit int64) ([]models.Business, error) {
	opts := options.Find().SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var businesses []models.Business
	if err := cur.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

// GetAll returns every business. Used by the batch classifier and sitemap.
func (s *Store) GetAll(ctx context.Context) ([]models.Business, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var businesses []models.Business
	if err := cur.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

// ListMissingPhotos returns businesses that have a place ID but no stored
// image yet, capped at limit. The photo fetcher works through these in order.
func (s *Store) ListMissingPhotos(ctx context.Context, limit int64) ([]models.Business, error) {
	filter := bson.M{
		"google_place_id": bson.M{"$nin": bson.A{"", nil}},
		"$or": bson.A{
			bson.M{"image_urls": bson.M{"$exists": false}},
			bson.M{"image_urls": bson.M{"$size": 0}},
		},
	}
	opts := options.Find().SetLimit(limit).SetSort(bson.M{"slug": 1})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var businesses []models.Business
	if err := cur.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}

// Upsert creates or updates a business by slug. Tags are deliberately not
// written here; the classifier owns them via AddTags.
func (s *Store) Upsert(ctx context.Context, b models.Business) error {
	now := time.Now().UTC()
	b.UpdatedAt = &now

	filter := bson.M{"slug": b.Slug}
	update := bson.M{
		"$set": bson.M{
			"name":              b.Name,
			"short_description": b.ShortDescription,
			"long_description":  b.LongDescription,
			"address":           b.Address,
			"postcode":          b.Postcode,
			"latitude":          b.Latitude,
			"longitude":         b.Longitude,
			"phone":             b.Phone,
			"website":           b.Website,
			"google_place_id":   b.GooglePlaceID,
			"listing_tier":      b.ListingTier,
			"featured":          b.Featured,
			"price_range":       b.PriceRange,
			"rating":            b.Rating,
			"review_count":      b.ReviewCount,
			"category_id":       b.CategoryID,
			"category_slug":     b.CategorySlug,
			"updated_at":        b.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"slug":       b.Slug,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// AddTags appends tags to a business without duplicating existing ones.
func (s *Store) AddTags(ctx context.Context, slug string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	update := bson.M{
		"$addToSet": bson.M{"tags": bson.M{"$each": tags}},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"slug": slug}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetPhoto appends an image URL for the business.
func (s *Store) SetPhoto(ctx context.Context, slug, imageURL string) error {
	update := bson.M{
		"$addToSet": bson.M{"image_urls": imageURL},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"slug": slug}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByTag counts businesses per tag, optionally restricted to a set of
// categories. A business with three tags contributes to three buckets.
func (s *Store) CountByTag(ctx context.Context, categorySlugs []string) (map[string]int, error) {
	match := bson.M{"tags": bson.M{"$exists": true, "$ne": bson.A{}}}
	if len(categorySlugs) > 0 {
		match["category_slug"] = bson.M{"$in": categorySlugs}
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$unwind": "$tags"},
		{
			"$group": bson.M{
				"_id":   "$tags",
				"count": bson.M{"$sum": 1},
			},
		},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := make(map[string]int)
	for cur.Next(ctx) {
		var doc struct {
			Tag   string `bson:"_id"`
			Count int    `bson:"count"`
		}
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		result[doc.Tag] = doc.Count
	}

	return result, cur.Err()
}

// CountByCategory returns the number of listings per category slug, used for
// the home page category grid.
func (s *Store) CountByCategory(ctx context.Context) (map[string]int, error) {
	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$category_slug",
				"count": bson.M{"$sum": 1},
			},
		},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := make(map[string]int)
	for cur.Next(ctx) {
		var doc struct {
			Slug  string `bson:"_id"`
			Count int    `bson:"count"`
		}
		if err := cur.Decode(&doc); err != nil {
			continue
		}
		result[doc.Slug] = doc.Count
	}

	return result, cur.Err()
}

// Exists checks if a business with the given slug exists.
func (s *Store) Exists(ctx context.Context, slug string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
