// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/assessflow/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// OutputDir applies equality check predicate on the "output_dir" field. It's identical to OutputDirEQ.
func OutputDir(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldOutputDir, v))
}

// TotalJobs applies equality check predicate on the "total_jobs" field. It's identical to TotalJobsEQ.
func TotalJobs(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalJobs, v))
}

// CompletedJobs applies equality check predicate on the "completed_jobs" field. It's identical to CompletedJobsEQ.
func CompletedJobs(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedJobs, v))
}

// FailedJobs applies equality check predicate on the "failed_jobs" field. It's identical to FailedJobsEQ.
func FailedJobs(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldFailedJobs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldName, v))
}

// OutputDirEQ applies the EQ predicate on the "output_dir" field.
func OutputDirEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldOutputDir, v))
}

// OutputDirNEQ applies the NEQ predicate on the "output_dir" field.
func OutputDirNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldOutputDir, v))
}

// OutputDirIn applies the In predicate on the "output_dir" field.
func OutputDirIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldOutputDir, vs...))
}

// OutputDirNotIn applies the NotIn predicate on the "output_dir" field.
func OutputDirNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldOutputDir, vs...))
}

// OutputDirGT applies the GT predicate on the "output_dir" field.
func OutputDirGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldOutputDir, v))
}

// OutputDirGTE applies the GTE predicate on the "output_dir" field.
func OutputDirGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldOutputDir, v))
}

// OutputDirLT applies the LT predicate on the "output_dir" field.
func OutputDirLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldOutputDir, v))
}

// OutputDirLTE applies the LTE predicate on the "output_dir" field.
func OutputDirLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldOutputDir, v))
}

// OutputDirContains applies the Contains predicate on the "output_dir" field.
func OutputDirContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldOutputDir, v))
}

// OutputDirHasPrefix applies the HasPrefix predicate on the "output_dir" field.
func OutputDirHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldOutputDir, v))
}

// OutputDirHasSuffix applies the HasSuffix predicate on the "output_dir" field.
func OutputDirHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldOutputDir, v))
}

// OutputDirEqualFold applies the EqualFold predicate on the "output_dir" field.
func OutputDirEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldOutputDir, v))
}

// OutputDirContainsFold applies the ContainsFold predicate on the "output_dir" field.
func OutputDirContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldOutputDir, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalJobsEQ applies the EQ predicate on the "total_jobs" field.
func TotalJobsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalJobs, v))
}

// TotalJobsNEQ applies the NEQ predicate on the "total_jobs" field.
func TotalJobsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalJobs, v))
}

// TotalJobsIn applies the In predicate on the "total_jobs" field.
func TotalJobsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalJobs, vs...))
}

// TotalJobsNotIn applies the NotIn predicate on the "total_jobs" field.
func TotalJobsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalJobs, vs...))
}

// TotalJobsGT applies the GT predicate on the "total_jobs" field.
func TotalJobsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalJobs, v))
}

// TotalJobsGTE applies the GTE predicate on the "total_jobs" field.
func TotalJobsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalJobs, v))
}

// TotalJobsLT applies the LT predicate on the "total_jobs" field.
func TotalJobsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalJobs, v))
}

// TotalJobsLTE applies the LTE predicate on the "total_jobs" field.
func TotalJobsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalJobs, v))
}

// CompletedJobsEQ applies the EQ predicate on the "completed_jobs" field.
func CompletedJobsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedJobs, v))
}

// CompletedJobsNEQ applies the NEQ predicate on the "completed_jobs" field.
func CompletedJobsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCompletedJobs, v))
}

// CompletedJobsIn applies the In predicate on the "completed_jobs" field.
func CompletedJobsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCompletedJobs, vs...))
}

// CompletedJobsNotIn applies the NotIn predicate on the "completed_jobs" field.
func CompletedJobsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCompletedJobs, vs...))
}

// CompletedJobsGT applies the GT predicate on the "completed_jobs" field.
func CompletedJobsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCompletedJobs, v))
}

// CompletedJobsGTE applies the GTE predicate on the "completed_jobs" field.
func CompletedJobsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCompletedJobs, v))
}

// CompletedJobsLT applies the LT predicate on the "completed_jobs" field.
func CompletedJobsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCompletedJobs, v))
}

// CompletedJobsLTE applies the LTE predicate on the "completed_jobs" field.
func CompletedJobsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCompletedJobs, v))
}

// FailedJobsEQ applies the EQ predicate on the "failed_jobs" field.
func FailedJobsEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldFailedJobs, v))
}

// FailedJobsNEQ applies the NEQ predicate on the "failed_jobs" field.
func FailedJobsNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldFailedJobs, v))
}

// FailedJobsIn applies the In predicate on the "failed_jobs" field.
func FailedJobsIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldFailedJobs, vs...))
}

// FailedJobsNotIn applies the NotIn predicate on the "failed_jobs" field.
func FailedJobsNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldFailedJobs, vs...))
}

// FailedJobsGT applies the GT predicate on the "failed_jobs" field.
func FailedJobsGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldFailedJobs, v))
}

// FailedJobsGTE applies the GTE predicate on the "failed_jobs" field.
func FailedJobsGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldFailedJobs, v))
}

// FailedJobsLT applies the LT predicate on the "failed_jobs" field.
func FailedJobsLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldFailedJobs, v))
}

// FailedJobsLTE applies the LTE predicate on the "failed_jobs" field.
func FailedJobsLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldFailedJobs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.NotPredicates(p))
}
