package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/assessflow/pipeline/pkg/models"
)

// ExecutionInstance holds the schema definition for the ExecutionInstance
// entity: one concrete run of a project for a job. The row is created with
// status=running before scheduling, its counters are touched as nodes
// terminate, and status moves exactly once, at finalize.
type ExecutionInstance struct {
	ent.Schema
}

// Fields of the ExecutionInstance.
func (ExecutionInstance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("job_id").
			Optional().
			Nillable().
			Comment("Weak reference; ad-hoc runs have no job"),
		field.String("session_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Int("total_nodes"),
		field.Int("executed_nodes").
			Default(0),
		field.Int("failed_nodes").
			Default(0),
		field.Int("skipped_nodes").
			Default(0),
		field.String("current_node_id").
			Optional().
			Nillable().
			Comment("Most recently dispatched node, for live progress joins"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.JSON("global_variables_snapshot", map[string]models.Variable{}).
			Comment("Merged environment frozen before scheduling; never mutated in-run"),
		field.JSON("execution_results", map[string]models.NodeResult{}).
			Optional(),
	}
}

// Edges of the ExecutionInstance.
func (ExecutionInstance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("logs", ExecutionLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ExecutionInstance.
func (ExecutionInstance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "status"),
		index.Fields("project_id"),
		index.Fields("session_id"),
		// Retention scan
		index.Fields("status", "started_at"),
	}
}
