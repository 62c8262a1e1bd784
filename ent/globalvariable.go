// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/assessflow/pipeline/ent/globalvariable"
	"github.com/assessflow/pipeline/ent/project"
)

// GlobalVariable is the model entity for the GlobalVariable schema.
type GlobalVariable struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Editor hint (text, json, number); not enforced here
	Type string `json:"type,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Editor grouping folder
	Folder *string `json:"folder,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GlobalVariableQuery when eager-loading is set.
	Edges        GlobalVariableEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GlobalVariableEdges holds the relations/edges for other nodes in the graph.
type GlobalVariableEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GlobalVariableEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GlobalVariable) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case globalvariable.FieldID, globalvariable.FieldProjectID, globalvariable.FieldName, globalvariable.FieldValue, globalvariable.FieldType, globalvariable.FieldDescription, globalvariable.FieldFolder:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GlobalVariable fields.
func (_m *GlobalVariable) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case globalvariable.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case globalvariable.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case globalvariable.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case globalvariable.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case globalvariable.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case globalvariable.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case globalvariable.FieldFolder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field folder", values[i])
			} else if value.Valid {
				_m.Folder = new(string)
				*_m.Folder = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the GlobalVariable.
// This includes values selected through modifiers, order, etc.
func (_m *GlobalVariable) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the GlobalVariable entity.
func (_m *GlobalVariable) QueryProject() *ProjectQuery {
	return NewGlobalVariableClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this GlobalVariable.
// Note that you need to call GlobalVariable.Unwrap() before calling this method if this GlobalVariable
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GlobalVariable) Update() *GlobalVariableUpdateOne {
	return NewGlobalVariableClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GlobalVariable entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GlobalVariable) Unwrap() *GlobalVariable {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GlobalVariable is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GlobalVariable) String() string {
	var builder strings.Builder
	builder.WriteString("GlobalVariable(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Folder; v != nil {
		builder.WriteString("folder=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// GlobalVariables is a parsable slice of GlobalVariable.
type GlobalVariables []*GlobalVariable
