// Package tagging assigns classification tags to businesses by matching
// keyword rules against their free-text fields and postcode. Tags are only
// ever added, never removed, so re-running the classifier is safe and a
// second pass over unchanged data is a no-op.
package tagging

import (
	"regexp"
	"strings"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// Rule matches either a regex over the business's concatenated text fields or
// a postcode prefix. Exactly one of Pattern/PostcodePrefix is set.
type Rule struct {
	Tag            string
	Pattern        *regexp.Regexp // case-insensitive match over name + descriptions + address
	PostcodePrefix string         // e.g. "PR8 2" for Birkdale
}

// re compiles a case-insensitive pattern; rules are fixed so a bad pattern is
// a programmer error.
func re(expr string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + expr)
}

// Rules is the classifier rule table, evaluated in order. Multiple rules may
// contribute the same tag; duplicates collapse via set semantics.
var Rules = []Rule{
	{Tag: models.TagDogFriendly, Pattern: re(`dog[- ]friendly|dogs welcome|well[- ]behaved dogs`)},
	{Tag: models.TagFamilyFriendly, Pattern: re(`family[- ]friendly|kids menu|children welcome|play area|soft play`)},
	{Tag: models.TagNearBeach, Pattern: re(`beach|seafront|promenade|esplanade|marine lake|pier`)},
	{Tag: models.TagNearBirkdale, Pattern: re(`birkdale`)},
	{Tag: models.TagNearBirkdale, PostcodePrefix: "PR8 2"},
	{Tag: models.TagLordStreet, Pattern: re(`lord street`)},
	{Tag: models.TagSeaView, Pattern: re(`sea view|views? (of|over|across) the sea|overlooking the (sea|marine lake)`)},
	{Tag: models.TagLiveMusic, Pattern: re(`live music|live bands?|open mic|acoustic night`)},
	{Tag: models.TagVegan, Pattern: re(`vegan|plant[- ]based`)},
	{Tag: models.TagAccessible, Pattern: re(`wheelchair|step[- ]free|accessible entrance|disabled access`)},
}

// SearchText concatenates the fields the text rules match against.
func SearchText(b models.Business) string {
	return strings.Join([]string{
		b.Name,
		b.ShortDescription,
		b.LongDescription,
		b.Address,
	}, "\n")
}

// Classify evaluates the rule table against one business and returns the tags
// it should carry that it does not already. An empty result means the record
// is skipped, not that anything failed.
func Classify(b models.Business) []string {
	return ClassifyWith(Rules, b)
}

// ClassifyWith runs Classify against an explicit rule set.
func ClassifyWith(rules []Rule, b models.Business) []string {
	text := SearchText(b)
	postcode := strings.ToUpper(strings.TrimSpace(b.Postcode))

	seen := make(map[string]bool, len(b.Tags))
	for _, t := range b.Tags {
		seen[t] = true
	}

	var added []string
	for _, r := range rules {
		if seen[r.Tag] {
			continue
		}
		matched := false
		switch {
		case r.Pattern != nil:
			matched = r.Pattern.MatchString(text)
		case r.PostcodePrefix != "":
			matched = strings.HasPrefix(postcode, strings.ToUpper(r.PostcodePrefix))
		}
		if matched {
			added = append(added, r.Tag)
			seen[r.Tag] = true
		}
	}
	return added
}
