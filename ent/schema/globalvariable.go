package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GlobalVariable holds the schema definition for the GlobalVariable entity.
// Stored values seed each run's variable environment; runs never write back
// (writes go to the execution snapshot only).
type GlobalVariable struct {
	ent.Schema
}

// Fields of the GlobalVariable.
func (GlobalVariable) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("variable_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Text("value").
			Default(""),
		field.String("type").
			Optional().
			Comment("Editor hint (text, json, number); not enforced here"),
		field.String("description").
			Optional().
			Nillable(),
		field.String("folder").
			Optional().
			Nillable().
			Comment("Editor grouping folder"),
	}
}

// Edges of the GlobalVariable.
func (GlobalVariable) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("global_variables").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the GlobalVariable.
func (GlobalVariable) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").
			Unique(),
	}
}
