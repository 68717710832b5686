package repository

// Repositories collects every repository the use cases depend on.
type Repositories struct {
	Organization OrganizationRepository
	Opportunity  OpportunityRepository
	User         UserRepository
	Article      ArticleRepository
	Testimonial  TestimonialRepository
	Plan         PlanRepository
	Newsletter   NewsletterRepository
	Contact      ContactRepository
}
