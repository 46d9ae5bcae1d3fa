// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll makes sure the three collections exist and carry their
// JSON-Schema validators. Deployments without collMod support (DocumentDB)
// get the collections without validators, logged rather than fatal.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("businesses", businessesSchema())
	ensure("categories", categoriesSchema())
	ensure("contact_submissions", contactSubmissionsSchema())

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// collectionExists checks via ListCollectionNames so the "created collection"
// log line only appears when a collection was actually created.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection creates the collection when missing, tolerating the race
// where another process created it first.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// When listing failed, just attempt the create and sort out the race.
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

// The error helpers match on both command codes and message text; managed
// MongoDB variants are not consistent about which they return.

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

// businessesSchema guards the fields the ranking and page rendering rely on.
// Slugs are path segments, so the pattern forbids anything URL-hostile.
func businessesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"slug", "name", "category_slug", "listing_tier"},
			"properties": bson.M{
				"slug":          bson.M{"bsonType": "string", "minLength": 1, "pattern": "^[a-z0-9-]+$"},
				"name":          bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"category_slug": bson.M{"bsonType": "string", "minLength": 1},
				"listing_tier":  bson.M{"enum": bson.A{"premium", "featured", "standard", "free"}},
				"price_range":   bson.M{"enum": bson.A{"£", "££", "£££", "££££"}},
				"rating":        bson.M{"bsonType": bson.A{"double", "int", "null"}, "minimum": 0, "maximum": 5},
				"review_count":  bson.M{"bsonType": bson.A{"int", "long", "null"}, "minimum": 0},
				"tags":          bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
			},
		},
	}
}

func categoriesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"slug", "name"},
			"properties": bson.M{
				"slug": bson.M{"bsonType": "string", "minLength": 1, "pattern": "^[a-z0-9-]+$"},
				"name": bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
			},
		},
	}
}

func contactSubmissionsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"reference", "name", "email", "message"},
			"properties": bson.M{
				"reference": bson.M{"bsonType": "string", "minLength": 1},
				"name":      bson.M{"bsonType": "string", "minLength": 1},
				"email":     bson.M{"bsonType": "string", "minLength": 3},
				"message":   bson.M{"bsonType": "string", "minLength": 1},
				"notified":  bson.M{"bsonType": "bool"},
			},
		},
	}
}
