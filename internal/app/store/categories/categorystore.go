// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// Store provides access to the categories collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new category store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("categories")}
}

// GetBySlug returns a category by its slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Category, error) {
	var cat models.Category
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&cat)
	if err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// GetAll returns all categories in navigation order.
func (s *Store) GetAll(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.M{"sort_order": 1})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Upsert creates or updates a category by slug.
func (s *Store) Upsert(ctx context.Context, cat models.Category) error {
	filter := bson.M{"slug": cat.Slug}
	update := bson.M{
		"$set": bson.M{
			"name":             cat.Name,
			"description":      cat.Description,
			"meta_description": cat.MetaDescription,
			"sort_order":       cat.SortOrder,
		},
		"$setOnInsert": bson.M{
			"_id":  primitive.NewObjectID(),
			"slug": cat.Slug,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Exists checks if a category with the given slug exists.
func (s *Store) Exists(ctx context.Context, slug string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
