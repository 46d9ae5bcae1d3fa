package models

import "time"

// Guide is static editorial metadata for a long-form guide page. The body of
// each guide lives in a hand-authored template; this registry only drives
// routing, listing order and SEO metadata.
type Guide struct {
	Slug            string
	Title           string
	CategorySlug    string // related directory category, for cross-linking
	HeroImageURL    string
	MetaDescription string
	PublishedAt     time.Time
	UpdatedAt       time.Time
	Tags            []string
}

// BlogPost mirrors Guide for shorter, dated posts.
type BlogPost struct {
	Slug            string
	Title           string
	HeroImageURL    string
	MetaDescription string
	PublishedAt     time.Time
	UpdatedAt       time.Time
	Tags            []string
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Guides is the registry of published guides, newest first.
var Guides = []Guide{
	{
		Slug:            "weekend-in-southport",
		Title:           "A Perfect Weekend in Southport",
		CategorySlug:    CategoryThingsToDo,
		HeroImageURL:    "/static/img/guides/weekend.jpg",
		MetaDescription: "Two days in Southport done properly: where to eat, stay and walk, from the Pier to Birkdale village.",
		PublishedAt:     date(2025, time.March, 14),
		UpdatedAt:       date(2025, time.June, 2),
		Tags:            []string{TagNearBeach, TagFamilyFriendly},
	},
	{
		Slug:            "lord-street-shopping-guide",
		Title:           "The Lord Street Shopping Guide",
		CategorySlug:    CategoryShopping,
		HeroImageURL:    "/static/img/guides/lord-street.jpg",
		MetaDescription: "A walk down Lord Street's Victorian arcades: the independents worth your time.",
		PublishedAt:     date(2025, time.February, 7),
		UpdatedAt:       date(2025, time.February, 7),
		Tags:            []string{TagLordStreet},
	},
	{
		Slug:            "southport-with-dogs",
		Title:           "Southport With Dogs",
		CategorySlug:    CategoryThingsToDo,
		HeroImageURL:    "/static/img/guides/dogs.jpg",
		MetaDescription: "Dog-friendly beaches, walks, pubs and cafés across Southport and Ainsdale.",
		PublishedAt:     date(2024, time.November, 21),
		UpdatedAt:       date(2025, time.April, 18),
		Tags:            []string{TagDogFriendly, TagNearBeach},
	},
}

// BlogPosts is the registry of published posts, newest first.
var BlogPosts = []BlogPost{
	{
		Slug:            "open-returns-to-birkdale",
		Title:           "The Open Returns to Royal Birkdale",
		HeroImageURL:    "/static/img/blog/birkdale.jpg",
		MetaDescription: "What championship week means for the town, and how to plan a stay.",
		PublishedAt:     date(2025, time.May, 30),
		UpdatedAt:       date(2025, time.May, 30),
		Tags:            []string{TagNearBirkdale},
	},
	{
		Slug:            "new-openings-spring",
		Title:           "Five New Openings Worth a Look This Spring",
		HeroImageURL:    "/static/img/blog/openings.jpg",
		MetaDescription: "New restaurants, cafés and shops that opened in Southport this spring.",
		PublishedAt:     date(2025, time.April, 11),
		UpdatedAt:       date(2025, time.April, 11),
	},
	{
		Slug:            "air-show-weekend",
		Title:           "Making the Most of Air Show Weekend",
		HeroImageURL:    "/static/img/blog/airshow.jpg",
		MetaDescription: "Where to watch, park and eat during the Southport Air Show.",
		PublishedAt:     date(2024, time.September, 5),
		UpdatedAt:       date(2024, time.September, 5),
		Tags:            []string{TagNearBeach, TagFamilyFriendly},
	},
}

// GuideBySlug looks up a guide in the registry.
func GuideBySlug(slug string) (Guide, bool) {
	for _, g := range Guides {
		if g.Slug == slug {
			return g, true
		}
	}
	return Guide{}, false
}

// BlogPostBySlug looks up a post in the registry.
func BlogPostBySlug(slug string) (BlogPost, bool) {
	for _, p := range BlogPosts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}
