// Package inputval validates form input with waffle/pantry/validate.
//
// Define an input struct with validate tags, fill it from r.FormValue, and
// call Validate. The Result carries messages suitable for showing on the
// page, with field names taken from label tags.
//
// Example:
//
//	type ContactInput struct {
//	    Name  string `validate:"required" label:"Name"`
//	    Email string `validate:"required,email" label:"Email"`
//	}
//
//	input := ContactInput{
//	    Name:  r.FormValue("name"),
//	    Email: r.FormValue("email"),
//	}
//
//	if res := inputval.Validate(input); res.HasErrors() {
//	    // res.First() gives the first error message for display
//	    renderWithError(w, r, res.First())
//	    return
//	}
package inputval

import (
	"net/mail"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/dalemusser/waffle/pantry/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// Result collects per-field validation failures.
type Result struct {
	Errors []FieldError
}

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string
	Label   string
	Message string
}

func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first error message; empty when validation passed.
// Form handlers show one error at a time, so this is the usual accessor.
func (r *Result) First() string {
	if len(r.Errors) > 0 {
		return r.Errors[0].Message
	}
	return ""
}

// All returns all error messages joined with "; ".
func (r *Result) All() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

var (
	customValidator *validate.Validator
	validatorOnce   sync.Once
)

// getValidator builds the shared validator on first use, registering the
// directory-specific rules alongside pantry/validate's built-ins.
func getValidator() *validate.Validator {
	validatorOnce.Do(func() {
		customValidator = validate.New(validate.WithStopOnFirstError())

		// listingtier: validates against the known listing tiers
		customValidator.RegisterRuleFunc("listingtier", func(value any) bool {
			if s, ok := value.(string); ok {
				return models.IsValidListingTier(strings.ToLower(strings.TrimSpace(s)))
			}
			return false
		}, "listingtier")

		// pricerange: validates against the "£".."££££" scale
		customValidator.RegisterRuleFunc("pricerange", func(value any) bool {
			if s, ok := value.(string); ok {
				s = strings.TrimSpace(s)
				return s == "" || models.IsValidPriceRange(s)
			}
			return false
		}, "pricerange")

		// httpurl: validates that string is a valid http/https URL
		customValidator.RegisterRuleFunc("httpurl", func(value any) bool {
			if s, ok := value.(string); ok {
				return IsValidHTTPURL(s)
			}
			return false
		}, "httpurl")

		// objectid: validates that string is a valid MongoDB ObjectID hex
		customValidator.RegisterRuleFunc("objectid", func(value any) bool {
			if s, ok := value.(string); ok {
				return IsValidObjectID(s)
			}
			return false
		}, "objectid")
	})
	return customValidator
}

// Validate runs the struct's validate tags and translates failures into
// readable messages. Beyond pantry/validate's built-ins (required, email,
// oneof, min, max) four rules are registered here: listingtier, pricerange
// (empty allowed), httpurl, and objectid.
func Validate(s any) *Result {
	result := &Result{}

	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return result
	}

	labels := getFieldLabels(s)

	if errs, ok := err.(validate.Errors); ok {
		for _, e := range errs {
			label := labels[e.Field]
			if label == "" {
				label = e.Field
			}

			msg := formatMessage(label, e.Rule, e.Param)
			result.Errors = append(result.Errors, FieldError{
				Field:   e.Field,
				Label:   label,
				Message: msg,
			})
		}
	}

	return result
}

// getFieldLabels maps field names (json tag name when present) to their
// label tag values.
func getFieldLabels(s any) map[string]string {
	labels := make(map[string]string)

	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return labels
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		fieldName := field.Name
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" && parts[0] != "-" {
				fieldName = parts[0]
			}
		}

		if label := field.Tag.Get("label"); label != "" {
			labels[fieldName] = label
		}
	}

	return labels
}

// formatMessage turns a failed rule into copy fit for the page.
func formatMessage(label, rule, param string) string {
	switch rule {
	case "required":
		return label + " is required."
	case "email":
		return "A valid email address is required."
	case "oneof", "enum":
		return label + " must be one of: " + strings.ReplaceAll(param, " ", ", ") + "."
	case "min":
		return label + " must be at least " + param + " characters."
	case "max":
		return label + " must be at most " + param + " characters."
	case "listingtier":
		return label + " must be one of: " + strings.Join(models.AllListingTiers(), ", ") + "."
	case "pricerange":
		return label + " must be one of: " + strings.Join(models.AllPriceRanges(), ", ") + "."
	case "httpurl":
		return label + " must be a valid URL starting with http:// or https://."
	case "objectid":
		return label + " is not a valid ID."
	default:
		return label + " is invalid."
	}
}

// IsValidEmail reports whether email parses as a bare RFC 5322 address.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// ParseAddress also accepts "Name <addr>"; only the bare form counts.
	return addr.Address == email
}

// IsValidHTTPURL reports whether s parses as an http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// IsValidObjectID reports whether s is a MongoDB ObjectID in hex form.
func IsValidObjectID(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
