package models

// Collection is a curated, tag-filtered view over the business set. Collections
// are configuration, not data: the list below is the complete set. A collection
// only goes live (public, indexable) once enough businesses match it.
type Collection struct {
	Slug            string
	Title           string
	Description     string
	MetaDescription string

	// A business matches when it carries at least one of Tags AND belongs to
	// one of CategorySlugs.
	Tags          []string
	CategorySlugs []string

	// MinListings is the minimum matching-business count before the collection
	// is shown as live rather than "coming soon".
	MinListings int

	// Priority orders collections on index pages; higher sorts first.
	Priority int
}

// Tags assigned by the keyword classifier. Collections and the event page
// reference these; the classifier rule table in system/tagging produces them.
const (
	TagDogFriendly    = "dog-friendly"
	TagFamilyFriendly = "family-friendly"
	TagNearBeach      = "near-beach"
	TagNearBirkdale   = "near-birkdale"
	TagLordStreet     = "lord-street"
	TagSeaView        = "sea-view"
	TagLiveMusic      = "live-music"
	TagVegan          = "vegan-options"
	TagAccessible     = "wheelchair-accessible"
)

// DefaultCollections is the full configured set of curated collections.
var DefaultCollections = []Collection{
	{
		Slug:            "dog-friendly-restaurants",
		Title:           "Dog-Friendly Restaurants",
		Description:     "Eat out without leaving the dog at home.",
		MetaDescription: "Dog-friendly restaurants and cafés in Southport, updated regularly.",
		Tags:            []string{TagDogFriendly},
		CategorySlugs:   []string{CategoryRestaurants, CategoryCafes},
		MinListings:     5,
		Priority:        90,
	},
	{
		Slug:            "sea-view-dining",
		Title:           "Dining With a Sea View",
		Description:     "Tables looking out over the Irish Sea and Marine Lake.",
		MetaDescription: "Restaurants and bars with a sea view in Southport.",
		Tags:            []string{TagSeaView, TagNearBeach},
		CategorySlugs:   []string{CategoryRestaurants, CategoryPubsBars},
		MinListings:     4,
		Priority:        80,
	},
	{
		Slug:            "family-days-out",
		Title:           "Family Days Out",
		Description:     "Attractions and activities the kids will actually enjoy.",
		MetaDescription: "Family-friendly days out in Southport for all ages.",
		Tags:            []string{TagFamilyFriendly},
		CategorySlugs:   []string{CategoryThingsToDo},
		MinListings:     4,
		Priority:        70,
	},
	{
		Slug:            "birkdale-stays",
		Title:           "Places to Stay Near Birkdale",
		Description:     "Accommodation within easy reach of Birkdale village and the championship links.",
		MetaDescription: "Hotels, guest houses and holiday lets near Birkdale, Southport.",
		Tags:            []string{TagNearBirkdale},
		CategorySlugs:   []string{CategoryAccommodation},
		MinListings:     4,
		Priority:        60,
	},
	{
		Slug:            "live-music-venues",
		Title:           "Live Music Nights",
		Description:     "Pubs and bars with regular live acts.",
		MetaDescription: "Live music pubs and bars in Southport.",
		Tags:            []string{TagLiveMusic},
		CategorySlugs:   []string{CategoryPubsBars},
		MinListings:     3,
		Priority:        50,
	},
	{
		Slug:            "vegan-friendly",
		Title:           "Vegan-Friendly Eats",
		Description:     "Menus with proper plant-based choices, not just chips.",
		MetaDescription: "Vegan and vegetarian-friendly restaurants and cafés in Southport.",
		Tags:            []string{TagVegan},
		CategorySlugs:   []string{CategoryRestaurants, CategoryCafes},
		MinListings:     4,
		Priority:        40,
	},
}

// CollectionBySlug looks up a configured collection.
func CollectionBySlug(slug string) (Collection, bool) {
	for _, c := range DefaultCollections {
		if c.Slug == slug {
			return c, true
		}
	}
	return Collection{}, false
}

// OpenAccommodation is the event-specific collection behind the golf
// accommodation page. It is routed separately from /collections but resolved
// with the same live/coming-soon rule.
var OpenAccommodation = Collection{
	Slug:            "the-open-accommodation",
	Title:           "Stay Near Royal Birkdale for The Open",
	Description:     "Accommodation close to Royal Birkdale Golf Club for championship week.",
	MetaDescription: "Where to stay near Royal Birkdale for The Open: hotels and guest houses in Birkdale and Southport.",
	Tags:            []string{TagNearBirkdale},
	CategorySlugs:   []string{CategoryAccommodation},
	MinListings:     4,
	Priority:        100,
}
