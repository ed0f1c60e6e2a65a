package events

import "github.com/google/uuid"

// LookupEvent records one finished lookup for downstream consumers. Events
// are analytics, not an audit trail: losing one is acceptable, blocking a
// lookup on one is not.
type LookupEvent struct {
	EventID    string `json:"event_id"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Outcome    string `json:"outcome"`
	Source     string `json:"source,omitempty"`
	Count      int    `json:"count"`
	DurationMS int64  `json:"duration_ms"`
}

func NewLookupEvent(country, postalCode string) LookupEvent {
	return LookupEvent{
		EventID:    uuid.NewString(),
		Country:    country,
		PostalCode: postalCode,
	}
}
