package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// Jobs form the authoritative queue: queued → processing → {completed|failed},
// terminal states never transition. Session, Project and Batch are weak
// references (plain ids, no edges) so each entity loads independently.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Set for session-bound jobs; batch jobs leave it empty"),
		field.String("project_id").
			Immutable(),
		field.String("pipeline_kind").
			Comment("Copied from the project at enqueue so leasing stays single-table"),
		field.Enum("status").
			Values("queued", "processing", "completed", "failed").
			Default("queued"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Holder of the current lease"),
		field.Time("lease_deadline").
			Optional().
			Nillable().
			Comment("Processing past this instant is reclaimed by the reaper"),
		field.Int("retries").
			Default(0).
			Comment("Reap/requeue count; capped by retries.max"),
		field.JSON("initial_variables", map[string]string{}).
			Optional().
			Comment("Per-job variable overrides (batch fan-out input)"),
		field.Text("error_text").
			Optional().
			Nillable(),
		field.String("batch_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// Lease scan: oldest queued jobs of a kind
		index.Fields("pipeline_kind", "status", "created_at"),
		// Reaper scan: expired processing leases
		index.Fields("status", "lease_deadline"),
		index.Fields("session_id"),
		index.Fields("batch_id"),
		index.Fields("worker_id"),
	}
}
