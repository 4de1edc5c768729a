package events

import "time"

const AFDGeneratedTopic = "rh.export.afd.generated.v1"

type AFDGeneratedEvent struct {
	EventType    string    `json:"event_type"`
	CompanyID    string    `json:"company_id"`
	PeriodStart  string    `json:"period_start"`
	PeriodEnd    string    `json:"period_end"`
	Filename     string    `json:"filename"`
	TotalRecords int       `json:"total_records"`
	OccurredAt   time.Time `json:"occurred_at"`
}
