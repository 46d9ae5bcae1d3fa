// Package normalize provides helper functions for consistent string normalization
// across the application. Use these helpers instead of scattered strings.ToLower
// and strings.TrimSpace calls to ensure consistent behavior.
package normalize

import "strings"

// Email normalizes an email address by trimming whitespace and converting to lowercase.
// This is the canonical way to normalize emails before storage or comparison.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name normalizes a display name by trimming whitespace. Case is preserved;
// names are display values, not lookup keys.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Postcode normalizes a UK postcode for storage: trimmed, uppercased, with
// interior whitespace collapsed to a single space.
func Postcode(s string) string {
	fields := strings.Fields(strings.ToUpper(s))
	return strings.Join(fields, " ")
}

// QueryParam normalizes a query parameter by trimming whitespace.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Slugify converts a display name into a URL slug: lowercase, ASCII letters
// and digits kept, everything else collapsed to single hyphens. Used by the
// CSV importer to derive stable slugs from business names.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '&':
			if !lastHyphen {
				b.WriteString("-and-")
				lastHyphen = true
			} else {
				b.WriteString("and-")
				lastHyphen = true
			}
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
