package events

import (
	"context"

	"github.com/assessflow/pipeline/ent"
)

// eventQuerier is the slice of services.EventService the adapter needs.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter adapts an event row querier to the CatchupQuerier
// interface the ConnectionManager consumes.
type EventServiceAdapter struct {
	querier eventQuerier
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(q eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{querier: q}
}

// GetCatchupEvents returns persisted events on channel with id > sinceID,
// oldest first, capped at limit.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := a.querier.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(rows))
	for i, row := range rows {
		result[i] = CatchupEvent{
			ID:      row.ID,
			Payload: row.Payload,
		}
	}
	return result, nil
}
