package contactstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/seftonweb/southportlocal/internal/testutil"
)

func submission() models.ContactSubmission {
	return models.ContactSubmission{
		Reference: uuid.NewString(),
		Name:      "Pat Example",
		Email:     "pat@example.com",
		Subject:   "Listing correction",
		Message:   "The phone number for the Bold Hotel is out of date.",
		Business:  "The Bold Hotel",
	}
}

func TestStore_InsertAndGetByReference(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := submission()
	id, err := store.Insert(ctx, sub)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if id.IsZero() {
		t.Fatal("Insert() should return a non-zero ID")
	}

	got, err := store.GetByReference(ctx, sub.Reference)
	if err != nil {
		t.Fatalf("GetByReference() error = %v", err)
	}
	if got.Name != sub.Name || got.Message != sub.Message {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Notified {
		t.Error("Notified should default to false")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be stamped on insert")
	}
}

func TestStore_GetByReference_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByReference(ctx, uuid.NewString())
	if err != mongo.ErrNoDocuments {
		t.Errorf("GetByReference() error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_MarkNotified(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := submission()
	id, err := store.Insert(ctx, sub)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := store.MarkNotified(ctx, id); err != nil {
		t.Fatalf("MarkNotified() error = %v", err)
	}

	got, _ := store.GetByReference(ctx, sub.Reference)
	if !got.Notified {
		t.Error("Notified should be true after MarkNotified")
	}

	if err := store.MarkNotified(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("MarkNotified() for unknown id error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_ListRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		sub := submission()
		sub.CreatedAt = time.Now().UTC().Add(time.Duration(-i) * time.Hour)
		if _, err := store.Insert(ctx, sub); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	got, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListRecent() count = %d, want 2", len(got))
	}
	if got[0].CreatedAt.Before(got[1].CreatedAt) {
		t.Error("ListRecent() should order newest first")
	}
}

func TestStore_DeleteOlderThan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	old := submission()
	old.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	if _, err := store.Insert(ctx, old); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	fresh := submission()
	if _, err := store.Insert(ctx, fresh); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	deleted, err := store.DeleteOlderThan(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("DeleteOlderThan() = %d, want 1", deleted)
	}

	count, _ := db.Collection("contact_submissions").CountDocuments(ctx, bson.M{})
	if count != 1 {
		t.Errorf("remaining submissions = %d, want 1", count)
	}
}

func TestStore_DuplicateReferenceRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub := submission()
	if _, err := store.Insert(ctx, sub); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	dup := submission()
	dup.Reference = sub.Reference
	if _, err := store.Insert(ctx, dup); err == nil {
		t.Error("duplicate reference should violate the unique index")
	}
}
