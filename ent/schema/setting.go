package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting holds the schema definition for the Setting entity: a small
// key/value store for worker settings staged via the admin API. Settings are
// read once at pool start, so edits stay pending until a restart.
type Setting struct {
	ent.Schema
}

// Fields of the Setting.
func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("setting_key").
			Unique().
			Immutable(),
		field.JSON("value", json.RawMessage{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
