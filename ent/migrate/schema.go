// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "output_dir", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "completed", "partial", "failed"}, Default: "queued"},
		{Name: "total_jobs", Type: field.TypeInt},
		{Name: "completed_jobs", Type: field.TypeInt, Default: 0},
		{Name: "failed_jobs", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_project_id",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[1]},
			},
			{
				Name:    "batch_status",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[4]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[4]},
			},
			{
				Name:    "event_job_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
		},
	}
	// ExecutionInstancesColumns holds the columns for the "execution_instances" table.
	ExecutionInstancesColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "total_nodes", Type: field.TypeInt},
		{Name: "executed_nodes", Type: field.TypeInt, Default: 0},
		{Name: "failed_nodes", Type: field.TypeInt, Default: 0},
		{Name: "skipped_nodes", Type: field.TypeInt, Default: 0},
		{Name: "current_node_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "global_variables_snapshot", Type: field.TypeJSON},
		{Name: "execution_results", Type: field.TypeJSON, Nullable: true},
	}
	// ExecutionInstancesTable holds the schema information for the "execution_instances" table.
	ExecutionInstancesTable = &schema.Table{
		Name:       "execution_instances",
		Columns:    ExecutionInstancesColumns,
		PrimaryKey: []*schema.Column{ExecutionInstancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executioninstance_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionInstancesColumns[2], ExecutionInstancesColumns[4]},
			},
			{
				Name:    "executioninstance_project_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionInstancesColumns[1]},
			},
			{
				Name:    "executioninstance_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionInstancesColumns[3]},
			},
			{
				Name:    "executioninstance_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionInstancesColumns[4], ExecutionInstancesColumns[10]},
			},
		},
	}
	// ExecutionLogsColumns holds the columns for the "execution_logs" table.
	ExecutionLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed"}},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// ExecutionLogsTable holds the schema information for the "execution_logs" table.
	ExecutionLogsTable = &schema.Table{
		Name:       "execution_logs",
		Columns:    ExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ExecutionLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_logs_execution_instances_logs",
				Columns:    []*schema.Column{ExecutionLogsColumns[8]},
				RefColumns: []*schema.Column{ExecutionInstancesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionlog_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[8], ExecutionLogsColumns[7]},
			},
		},
	}
	// GlobalVariablesColumns holds the columns for the "global_variables" table.
	GlobalVariablesColumns = []*schema.Column{
		{Name: "variable_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "type", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "folder", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// GlobalVariablesTable holds the schema information for the "global_variables" table.
	GlobalVariablesTable = &schema.Table{
		Name:       "global_variables",
		Columns:    GlobalVariablesColumns,
		PrimaryKey: []*schema.Column{GlobalVariablesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "global_variables_projects_global_variables",
				Columns:    []*schema.Column{GlobalVariablesColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "globalvariable_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{GlobalVariablesColumns[6], GlobalVariablesColumns[1]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "pipeline_kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "completed", "failed"}, Default: "queued"},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "lease_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "initial_variables", Type: field.TypeJSON, Nullable: true},
		{Name: "error_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "batch_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_pipeline_kind_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[4], JobsColumns[11]},
			},
			{
				Name:    "job_status_lease_deadline",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[6]},
			},
			{
				Name:    "job_session_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
			{
				Name:    "job_batch_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[10]},
			},
			{
				Name:    "job_worker_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "is_system", Type: field.TypeBool, Default: false},
		{Name: "canvas_data", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "json"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"ADAPTED", "FULL", "SCORE_TABLE"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "visibility", Type: field.TypeEnum, Enums: []string{"PUBLIC", "PRIVATE", "RESTRICTED"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_sessions_reports",
				Columns:    []*schema.Column{ReportsColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_session_id_type",
				Unique:  true,
				Columns: []*schema.Column{ReportsColumns[6], ReportsColumns[2]},
			},
		},
	}
	// ResponsesColumns holds the columns for the "responses" table.
	ResponsesColumns = []*schema.Column{
		{Name: "response_id", Type: field.TypeString, Unique: true},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "answered_at", Type: field.TypeTime},
		{Name: "time_spent", Type: field.TypeInt, Nullable: true},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "char_count", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// ResponsesTable holds the schema information for the "responses" table.
	ResponsesTable = &schema.Table{
		Name:       "responses",
		Columns:    ResponsesColumns,
		PrimaryKey: []*schema.Column{ResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "responses_sessions_responses",
				Columns:    []*schema.Column{ResponsesColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "response_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{ResponsesColumns[8], ResponsesColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"PROF", "BIG_FIVE"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"IN_PROGRESS", "COMPLETED", "ABANDONED"}, Default: "IN_PROGRESS"},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "job_status", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_job_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6]},
			},
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "setting_key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchesTable,
		EventsTable,
		ExecutionInstancesTable,
		ExecutionLogsTable,
		GlobalVariablesTable,
		JobsTable,
		ProjectsTable,
		ReportsTable,
		ResponsesTable,
		SessionsTable,
		SettingsTable,
	}
)

func init() {
	ExecutionLogsTable.ForeignKeys[0].RefTable = ExecutionInstancesTable
	GlobalVariablesTable.ForeignKeys[0].RefTable = ProjectsTable
	ReportsTable.ForeignKeys[0].RefTable = SessionsTable
	ResponsesTable.ForeignKeys[0].RefTable = SessionsTable
}
