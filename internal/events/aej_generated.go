package events

import "time"

const AEJGeneratedTopic = "rh.export.aej.generated.v1"

type AEJGeneratedEvent struct {
	EventType      string    `json:"event_type"`
	CompanyID      string    `json:"company_id"`
	Period         string    `json:"period"`
	EventID        string    `json:"event_id"`
	Filename       string    `json:"filename"`
	TotalEmployees int       `json:"total_employees"`
	OccurredAt     time.Time `json:"occurred_at"`
}
