package response

import (
	"time"

	"fieldflow/internal/domain/entities"
)

// TimelineEventResponse wraps an event payload with its date and type.
type TimelineEventResponse struct {
	Date time.Time                  `json:"date"`
	Type entities.TimelineEventType `json:"type"`
	Data entities.TimelineEvent     `json:"data"`
}

func FromTimeline(events []entities.TimelineEvent) []TimelineEventResponse {
	out := make([]TimelineEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, TimelineEventResponse{Date: e.Date(), Type: e.Type(), Data: e})
	}
	return out
}
