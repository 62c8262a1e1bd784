package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A project is a persisted DAG (nodes + edges + viewport) plus its global
// variables; jobs reference it by id to drive one execution.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Display name; the pipeline kind is derived from it"),
		field.Bool("is_system").
			Default(false).
			Comment("System projects cannot be deleted"),
		field.JSON("canvas_data", json.RawMessage{}).
			SchemaType(map[string]string{dialect.Postgres: "json"}).
			Comment("Canvas {nodes, edges, viewport}; json (not jsonb) so stored bytes survive round-trips"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("global_variables", GlobalVariable.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
