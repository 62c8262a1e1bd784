package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Response holds the schema definition for the Response entity.
// Responses are append-only until the owning session is sealed.
type Response struct {
	ent.Schema
}

// Fields of the Response.
func (Response) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("response_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("question_id").
			Comment("Position of the question in the questionnaire"),
		field.Text("question_text"),
		field.Text("answer"),
		field.Time("answered_at").
			Default(time.Now),
		field.Int("time_spent").
			Optional().
			Nillable().
			Comment("Seconds spent on the question"),
		field.Int("token_count").
			Optional().
			Nillable(),
		field.Int("char_count").
			Optional().
			Nillable(),
	}
}

// Edges of the Response.
func (Response) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("responses").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Response.
func (Response) Indexes() []ent.Index {
	return []ent.Index{
		// One answer per question within a session
		index.Fields("session_id", "question_id").
			Unique(),
	}
}
