// Code generated by ent, DO NOT EDIT.

package globalvariable

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/assessflow/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldName, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldValue, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldDescription, v))
}

// Folder applies equality check predicate on the "folder" field. It's identical to FolderEQ.
func Folder(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldFolder, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContainsFold(FieldName, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasSuffix(FieldValue, v))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContainsFold(FieldValue, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasSuffix(FieldType, v))
}

// TypeIsNil applies the IsNil predicate on the "type" field.
func TypeIsNil() predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIsNull(FieldType))
}

// TypeNotNil applies the NotNil predicate on the "type" field.
func TypeNotNil() predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotNull(FieldType))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContainsFold(FieldType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContainsFold(FieldDescription, v))
}

// FolderEQ applies the EQ predicate on the "folder" field.
func FolderEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEQ(FieldFolder, v))
}

// FolderNEQ applies the NEQ predicate on the "folder" field.
func FolderNEQ(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNEQ(FieldFolder, v))
}

// FolderIn applies the In predicate on the "folder" field.
func FolderIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIn(FieldFolder, vs...))
}

// FolderNotIn applies the NotIn predicate on the "folder" field.
func FolderNotIn(vs ...string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotIn(FieldFolder, vs...))
}

// FolderGT applies the GT predicate on the "folder" field.
func FolderGT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGT(FieldFolder, v))
}

// FolderGTE applies the GTE predicate on the "folder" field.
func FolderGTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldGTE(FieldFolder, v))
}

// FolderLT applies the LT predicate on the "folder" field.
func FolderLT(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLT(FieldFolder, v))
}

// FolderLTE applies the LTE predicate on the "folder" field.
func FolderLTE(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldLTE(FieldFolder, v))
}

// FolderContains applies the Contains predicate on the "folder" field.
func FolderContains(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContains(FieldFolder, v))
}

// FolderHasPrefix applies the HasPrefix predicate on the "folder" field.
func FolderHasPrefix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasPrefix(FieldFolder, v))
}

// FolderHasSuffix applies the HasSuffix predicate on the "folder" field.
func FolderHasSuffix(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldHasSuffix(FieldFolder, v))
}

// FolderIsNil applies the IsNil predicate on the "folder" field.
func FolderIsNil() predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldIsNull(FieldFolder))
}

// FolderNotNil applies the NotNil predicate on the "folder" field.
func FolderNotNil() predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldNotNull(FieldFolder))
}

// FolderEqualFold applies the EqualFold predicate on the "folder" field.
func FolderEqualFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldEqualFold(FieldFolder, v))
}

// FolderContainsFold applies the ContainsFold predicate on the "folder" field.
func FolderContainsFold(v string) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.FieldContainsFold(FieldFolder, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.GlobalVariable {
	return predicate.GlobalVariable(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.GlobalVariable {
	return predicate.GlobalVariable(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GlobalVariable) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GlobalVariable) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GlobalVariable) predicate.GlobalVariable {
	return predicate.GlobalVariable(sql.NotPredicates(p))
}
