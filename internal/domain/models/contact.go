package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactSubmission records a contact-form submission. Mail delivery is
// best-effort, so submissions are persisted first; Notified reflects whether
// the operator notification was sent successfully.
type ContactSubmission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Reference string             `bson:"reference" json:"reference"` // uuid shown to the submitter
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Business  string             `bson:"business,omitempty" json:"business,omitempty"` // optional business name the enquiry is about
	Notified  bool               `bson:"notified" json:"notified"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// MaxContactMessageLength bounds the contact form message body.
const MaxContactMessageLength = 3000

// Site identity defaults used when templates need a name before config loads.
const DefaultSiteName = "Southport Local"
