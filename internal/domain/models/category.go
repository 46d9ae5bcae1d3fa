package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a top-level section of the directory. Categories are seeded at
// startup and rarely change; every business belongs to exactly one.
type Category struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug            string             `bson:"slug" json:"slug"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	MetaDescription string             `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	SortOrder       int                `bson:"sort_order" json:"sort_order"`
}

// Category slugs used throughout routing and the collection definitions.
const (
	CategoryRestaurants   = "restaurants"
	CategoryCafes         = "cafes"
	CategoryPubsBars      = "pubs-bars"
	CategoryAccommodation = "accommodation"
	CategoryThingsToDo    = "things-to-do"
	CategoryShopping      = "shopping"
	CategoryServices      = "services"
)

// DefaultCategories is the seed list for a fresh database. SortOrder drives
// the navigation menu and the home page section order.
var DefaultCategories = []Category{
	{Slug: CategoryRestaurants, Name: "Restaurants", SortOrder: 1,
		Description:     "Places to eat across Southport, from Lord Street bistros to seafront dining.",
		MetaDescription: "The best restaurants in Southport: independently reviewed listings with ratings, price ranges and contact details."},
	{Slug: CategoryCafes, Name: "Cafés & Coffee", SortOrder: 2,
		Description:     "Coffee shops, tearooms and brunch spots.",
		MetaDescription: "Cafés and coffee shops in Southport, including dog-friendly and family-friendly spots."},
	{Slug: CategoryPubsBars, Name: "Pubs & Bars", SortOrder: 3,
		Description:     "Traditional pubs, cocktail bars and live music venues.",
		MetaDescription: "Pubs and bars in Southport town centre and beyond."},
	{Slug: CategoryAccommodation, Name: "Accommodation", SortOrder: 4,
		Description:     "Hotels, guest houses and holiday lets.",
		MetaDescription: "Where to stay in Southport: hotels, B&Bs and self-catering near the beach and Birkdale."},
	{Slug: CategoryThingsToDo, Name: "Things To Do", SortOrder: 5,
		Description:     "Attractions, days out and activities.",
		MetaDescription: "Things to do in Southport: attractions, family days out and activities for every season."},
	{Slug: CategoryShopping, Name: "Shopping", SortOrder: 6,
		Description:     "Independent shops and the Lord Street boulevard.",
		MetaDescription: "Shopping in Southport, from Lord Street arcades to independent boutiques."},
	{Slug: CategoryServices, Name: "Local Services", SortOrder: 7,
		Description:     "Trades and professional services in the town.",
		MetaDescription: "Trusted local services in Southport."},
}

// IsValidCategorySlug checks a slug against the seed list.
func IsValidCategorySlug(slug string) bool {
	for _, c := range DefaultCategories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
