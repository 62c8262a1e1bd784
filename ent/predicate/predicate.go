// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExecutionInstance is the predicate function for executioninstance builders.
type ExecutionInstance func(*sql.Selector)

// ExecutionLog is the predicate function for executionlog builders.
type ExecutionLog func(*sql.Selector)

// GlobalVariable is the predicate function for globalvariable builders.
type GlobalVariable func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// Response is the predicate function for response builders.
type Response func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
