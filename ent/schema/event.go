package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the durable side
// of the NOTIFY fan-out. Rows exist so reconnecting websocket clients can
// catch up by last-seen id; the retention sweep removes them past their TTL.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Auto-increment int id doubles as the catchup cursor.
		field.String("job_id").
			Optional().
			Comment("Owning job; empty for global-channel events"),
		field.String("channel"),
		field.JSON("payload", map[string]any{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "created_at"),
		index.Fields("job_id"),
	}
}
