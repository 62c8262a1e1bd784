package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session is one end-user questionnaire pass on UI1; it is sealed at
// COMPLETED and from then on referenced by at most one active Job.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Owning user when authenticated; anonymous sessions leave it empty"),
		field.Enum("mode").
			NamedValues(
				"Prof", "PROF",
				"BigFive", "BIG_FIVE",
			).
			Comment("Questionnaire product; also selects the pipeline kind"),
		field.Enum("status").
			NamedValues(
				"InProgress", "IN_PROGRESS",
				"Completed", "COMPLETED",
				"Abandoned", "ABANDONED",
			).
			Default("IN_PROGRESS"),
		field.Int("total_questions"),
		field.Int("current_index").
			Default(0).
			Comment("Index of the next unanswered question"),
		field.String("job_id").
			Optional().
			Nillable().
			Comment("Mirror of the active/last job; weak reference, no edge"),
		field.String("job_status").
			Optional().
			Nillable().
			Comment("Denormalized job outcome for the UI poller"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("responses", Response.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reports", Report.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("job_id"),
		index.Fields("user_id"),
	}
}
