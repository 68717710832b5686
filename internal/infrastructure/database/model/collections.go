// Package model holds the MongoDB document shapes of every collection.
package model

// Collection names.
const (
	CollectionOrganizations = "organizations"
	CollectionOpportunities = "opportunities"
	CollectionUsers         = "users"
	CollectionArticles      = "articles"
	CollectionTestimonials  = "testimonials"
	CollectionPlans         = "plans"
	CollectionNewsletter    = "newsletter"
	CollectionContactForms  = "contact_forms"
)

// AllCollections lists every collection the service owns.
var AllCollections = []string{
	CollectionOrganizations,
	CollectionOpportunities,
	CollectionUsers,
	CollectionArticles,
	CollectionTestimonials,
	CollectionPlans,
	CollectionNewsletter,
	CollectionContactForms,
}
