// Package htmlsanitize cleans rich text before it reaches a template.
// Business long descriptions arrive from CSV imports and the admin editor,
// both untrusted; bluemonday strips anything dangerous while keeping basic
// formatting.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// UGC policy plus a few formatting elements the admin editor emits.
		policy = bluemonday.UGCPolicy()
		policy.AllowElements("u", "s", "sub", "sup", "mark")
	})
	return policy
}

// Sanitize strips unsafe elements and attributes, keeping bold, italic,
// lists and links.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// SanitizeToHTML sanitizes and marks the result safe for direct template
// rendering.
func SanitizeToHTML(html string) template.HTML {
	return template.HTML(Sanitize(html))
}

// IsPlainText reports whether content carries no HTML markup. CSV imports
// usually supply plain-text descriptions.
func IsPlainText(content string) bool {
	if content == "" {
		return true
	}
	// A tag needs both brackets; missing either means plain text.
	return !strings.Contains(content, "<") || !strings.Contains(content, ">")
}

// PlainTextToHTML escapes the text, turns newlines into <br> and wraps the
// whole thing in a paragraph.
func PlainTextToHTML(text string) string {
	if text == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay accepts either plain text or HTML and returns markup
// ready to render. This is what the business page calls on descriptions.
func PrepareForDisplay(content string) template.HTML {
	if content == "" {
		return ""
	}
	if IsPlainText(content) {
		return template.HTML(PlainTextToHTML(content))
	}
	return SanitizeToHTML(content)
}
