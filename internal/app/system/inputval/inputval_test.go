package inputval

import (
	"strings"
	"testing"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

type contactInput struct {
	Name    string `validate:"required,max=100" label:"Name"`
	Email   string `validate:"required,email" label:"Email address"`
	Message string `validate:"required,max=3000" label:"Message"`
}

func TestValidate_OK(t *testing.T) {
	res := Validate(contactInput{
		Name:    "Pat Example",
		Email:   "pat@example.com",
		Message: "Hello",
	})
	if res.HasErrors() {
		t.Errorf("expected no errors, got %q", res.All())
	}
}

func TestValidate_Required(t *testing.T) {
	res := Validate(contactInput{Email: "pat@example.com", Message: "x"})
	if !res.HasErrors() {
		t.Fatal("missing name should fail validation")
	}
	if !strings.Contains(res.First(), "Name") {
		t.Errorf("First() = %q, want message naming the label", res.First())
	}
}

func TestValidate_Email(t *testing.T) {
	res := Validate(contactInput{Name: "Pat", Email: "not-an-email", Message: "x"})
	if !res.HasErrors() {
		t.Fatal("bad email should fail validation")
	}
}

func TestValidate_MaxLength(t *testing.T) {
	res := Validate(contactInput{
		Name:    "Pat",
		Email:   "pat@example.com",
		Message: strings.Repeat("a", models.MaxContactMessageLength+1),
	})
	if !res.HasErrors() {
		t.Fatal("over-length message should fail validation")
	}
	if !strings.Contains(res.First(), "3000") {
		t.Errorf("First() = %q, want the limit in the message", res.First())
	}
}

type listingInput struct {
	Tier  string `validate:"required,listingtier" label:"Listing tier"`
	Price string `validate:"pricerange" label:"Price range"`
	Site  string `validate:"httpurl" label:"Website"`
}

func TestValidate_ListingTier(t *testing.T) {
	if res := Validate(listingInput{Tier: models.TierPremium, Price: models.PriceModerate, Site: "https://example.com"}); res.HasErrors() {
		t.Errorf("valid listing input rejected: %q", res.All())
	}

	res := Validate(listingInput{Tier: "sponsored", Price: models.PriceModerate, Site: "https://example.com"})
	if !res.HasErrors() {
		t.Fatal("unknown tier should fail validation")
	}
	if !strings.Contains(res.First(), "premium") {
		t.Errorf("First() = %q, want the tier list", res.First())
	}
}

func TestValidate_PriceRange(t *testing.T) {
	// Empty is allowed; garbage is not.
	if res := Validate(listingInput{Tier: models.TierFree, Price: "", Site: "https://example.com"}); res.HasErrors() {
		t.Errorf("empty price range should pass, got %q", res.All())
	}
	if res := Validate(listingInput{Tier: models.TierFree, Price: "$$$", Site: "https://example.com"}); !res.HasErrors() {
		t.Error("invalid price range should fail validation")
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"pat@example.com", true},
		{" pat@example.com ", true},
		{"Pat <pat@example.com>", false},
		{"not-an-email", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.in); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path", true},
		{"ftp://example.com", false},
		{"example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidHTTPURL(tt.in); got != tt.want {
			t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidObjectID(t *testing.T) {
	if !IsValidObjectID("507f1f77bcf86cd799439011") {
		t.Error("valid hex ObjectID rejected")
	}
	if IsValidObjectID("zzz") || IsValidObjectID("") {
		t.Error("invalid ObjectID accepted")
	}
}
