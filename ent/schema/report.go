package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report holds the schema definition for the Report entity.
// Reports are delivered atomically per session: delivery deletes prior rows
// of the session before inserting the new set.
type Report struct {
	ent.Schema
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Enum("type").
			NamedValues(
				"Adapted", "ADAPTED",
				"Full", "FULL",
				"ScoreTable", "SCORE_TABLE",
			),
		field.Text("content").
			Comment("Opaque rendered report body"),
		field.Enum("visibility").
			NamedValues(
				"Public", "PUBLIC",
				"Private", "PRIVATE",
				"Restricted", "RESTRICTED",
			),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the Report.
func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("reports").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		// Delivery is delete-then-insert, so one row per (session, type)
		index.Fields("session_id", "type").
			Unique(),
	}
}
