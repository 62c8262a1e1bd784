package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Batch holds the schema definition for the Batch entity.
// A batch groups the sibling jobs created from one folder upload; its status
// is derived from the jobs' terminal states.
type Batch struct {
	ent.Schema
}

// Fields of the Batch.
func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("batch_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.String("output_dir"),
		field.Enum("status").
			Values("queued", "processing", "completed", "partial", "failed").
			Default("queued"),
		field.Int("total_jobs"),
		field.Int("completed_jobs").
			Default(0),
		field.Int("failed_jobs").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Batch.
func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("status"),
	}
}
