package mailer

import (
	"strings"
	"testing"
	"time"
)

func TestContactNotificationEmail(t *testing.T) {
	text, html := ContactNotificationEmail(ContactNotificationData{
		SiteName:    "Southport Local",
		Reference:   "ref-123",
		FromName:    "Pat Example",
		FromEmail:   "pat@example.com",
		Subject:     "Listing correction",
		Business:    "The Bold Hotel",
		Message:     "The phone number is out of date.",
		SubmittedAt: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	})

	for _, want := range []string{"ref-123", "Pat Example", "pat@example.com", "Listing correction", "The Bold Hotel"} {
		if !strings.Contains(text, want) {
			t.Errorf("text body missing %q", want)
		}
		if !strings.Contains(html, want) {
			t.Errorf("html body missing %q", want)
		}
	}

	// Message content must be escaped in the HTML rendering.
	_, html = ContactNotificationEmail(ContactNotificationData{
		SiteName:  "Southport Local",
		Reference: "ref-456",
		FromName:  "x",
		FromEmail: "x@example.com",
		Message:   "<script>alert(1)</script>",
	})
	if strings.Contains(html, "<script>") {
		t.Error("html body should escape message content")
	}
}

func TestContactAckEmail(t *testing.T) {
	text, html := ContactAckEmail(ContactAckData{
		SiteName:  "Southport Local",
		Reference: "ref-789",
		FromName:  "Pat",
	})

	if !strings.Contains(text, "ref-789") || !strings.Contains(html, "ref-789") {
		t.Error("both bodies should carry the reference")
	}
	if !strings.Contains(text, "Pat") {
		t.Error("text body should greet the submitter")
	}
}
