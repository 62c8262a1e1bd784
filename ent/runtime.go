// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/assessflow/pipeline/ent/batch"
	"github.com/assessflow/pipeline/ent/event"
	"github.com/assessflow/pipeline/ent/executioninstance"
	"github.com/assessflow/pipeline/ent/executionlog"
	"github.com/assessflow/pipeline/ent/globalvariable"
	"github.com/assessflow/pipeline/ent/job"
	"github.com/assessflow/pipeline/ent/project"
	"github.com/assessflow/pipeline/ent/report"
	"github.com/assessflow/pipeline/ent/response"
	"github.com/assessflow/pipeline/ent/schema"
	"github.com/assessflow/pipeline/ent/session"
	"github.com/assessflow/pipeline/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescCompletedJobs is the schema descriptor for completed_jobs field.
	batchDescCompletedJobs := batchFields[6].Descriptor()
	// batch.DefaultCompletedJobs holds the default value on creation for the completed_jobs field.
	batch.DefaultCompletedJobs = batchDescCompletedJobs.Default.(int)
	// batchDescFailedJobs is the schema descriptor for failed_jobs field.
	batchDescFailedJobs := batchFields[7].Descriptor()
	// batch.DefaultFailedJobs holds the default value on creation for the failed_jobs field.
	batch.DefaultFailedJobs = batchDescFailedJobs.Default.(int)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[8].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executioninstanceFields := schema.ExecutionInstance{}.Fields()
	_ = executioninstanceFields
	// executioninstanceDescExecutedNodes is the schema descriptor for executed_nodes field.
	executioninstanceDescExecutedNodes := executioninstanceFields[6].Descriptor()
	// executioninstance.DefaultExecutedNodes holds the default value on creation for the executed_nodes field.
	executioninstance.DefaultExecutedNodes = executioninstanceDescExecutedNodes.Default.(int)
	// executioninstanceDescFailedNodes is the schema descriptor for failed_nodes field.
	executioninstanceDescFailedNodes := executioninstanceFields[7].Descriptor()
	// executioninstance.DefaultFailedNodes holds the default value on creation for the failed_nodes field.
	executioninstance.DefaultFailedNodes = executioninstanceDescFailedNodes.Default.(int)
	// executioninstanceDescSkippedNodes is the schema descriptor for skipped_nodes field.
	executioninstanceDescSkippedNodes := executioninstanceFields[8].Descriptor()
	// executioninstance.DefaultSkippedNodes holds the default value on creation for the skipped_nodes field.
	executioninstance.DefaultSkippedNodes = executioninstanceDescSkippedNodes.Default.(int)
	// executioninstanceDescStartedAt is the schema descriptor for started_at field.
	executioninstanceDescStartedAt := executioninstanceFields[10].Descriptor()
	// executioninstance.DefaultStartedAt holds the default value on creation for the started_at field.
	executioninstance.DefaultStartedAt = executioninstanceDescStartedAt.Default.(func() time.Time)
	executionlogFields := schema.ExecutionLog{}.Fields()
	_ = executionlogFields
	// executionlogDescCreatedAt is the schema descriptor for created_at field.
	executionlogDescCreatedAt := executionlogFields[8].Descriptor()
	// executionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionlog.DefaultCreatedAt = executionlogDescCreatedAt.Default.(func() time.Time)
	globalvariableFields := schema.GlobalVariable{}.Fields()
	_ = globalvariableFields
	// globalvariableDescValue is the schema descriptor for value field.
	globalvariableDescValue := globalvariableFields[3].Descriptor()
	// globalvariable.DefaultValue holds the default value on creation for the value field.
	globalvariable.DefaultValue = globalvariableDescValue.Default.(string)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescRetries is the schema descriptor for retries field.
	jobDescRetries := jobFields[7].Descriptor()
	// job.DefaultRetries holds the default value on creation for the retries field.
	job.DefaultRetries = jobDescRetries.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[11].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[12].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescIsSystem is the schema descriptor for is_system field.
	projectDescIsSystem := projectFields[2].Descriptor()
	// project.DefaultIsSystem holds the default value on creation for the is_system field.
	project.DefaultIsSystem = projectDescIsSystem.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[6].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	responseFields := schema.Response{}.Fields()
	_ = responseFields
	// responseDescAnsweredAt is the schema descriptor for answered_at field.
	responseDescAnsweredAt := responseFields[5].Descriptor()
	// response.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	response.DefaultAnsweredAt = responseDescAnsweredAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCurrentIndex is the schema descriptor for current_index field.
	sessionDescCurrentIndex := sessionFields[5].Descriptor()
	// session.DefaultCurrentIndex holds the default value on creation for the current_index field.
	session.DefaultCurrentIndex = sessionDescCurrentIndex.Default.(int)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[8].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
