package entity

import "time"

// EventType names a domain event published on the event bus.
type EventType string

const (
	EventOpportunityCreated       EventType = "opportunity.created"
	EventOpportunityStatusChanged EventType = "opportunity.status_changed"
	EventNewsletterSubscribed     EventType = "newsletter.subscribed"
)

// Event is the JSON envelope of a domain event.
type Event struct {
	Type       EventType   `json:"type"`
	ID         string      `json:"id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// NewEvent wraps payload in an envelope with a fresh id.
func NewEvent(eventType EventType, payload interface{}, now time.Time) Event {
	return Event{
		Type:       eventType,
		ID:         NewID(),
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
}

// StatusChange is the payload of EventOpportunityStatusChanged.
type StatusChange struct {
	OpportunityID string            `json:"opportunity_id"`
	From          OpportunityStatus `json:"from"`
	To            OpportunityStatus `json:"to"`
}
