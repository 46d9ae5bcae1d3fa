// internal/app/store/contactlog/contactstore.go
package contactstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// Store provides access to the contact_submissions collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new contact submission store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_submissions")}
}

// Insert persists one submission and returns its ID.
func (s *Store) Insert(ctx context.Context, sub models.ContactSubmission) (primitive.ObjectID, error) {
	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	_, err := s.c.InsertOne(ctx, sub)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return sub.ID, nil
}

// GetByReference returns a submission by its public reference.
func (s *Store) GetByReference(ctx context.Context, reference string) (models.ContactSubmission, error) {
	var sub models.ContactSubmission
	err := s.c.FindOne(ctx, bson.M{"reference": reference}).Decode(&sub)
	if err != nil {
		return models.ContactSubmission{}, err
	}
	return sub, nil
}

// MarkNotified flags a submission as having had its operator email sent.
func (s *Store) MarkNotified(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"notified": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListRecent returns the newest submissions, capped at limit.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.ContactSubmission, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subs []models.ContactSubmission
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// DeleteOlderThan removes submissions created before the cutoff. The cleanup
// task runs this to keep the log bounded.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{
		"created_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
