// Package batch expands one folder upload into the sibling-job plan the
// batch service persists: one job per input document, each seeded with
// the variables a pipeline run needs to process that document on its
// own.
package batch

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/assessflow/pipeline/pkg/models"
)

// Variable names every sibling job is seeded with.
const (
	VarInputText  = "input_text"
	VarSourceName = "source_name"
	VarBatchID    = "batch_id"
	VarOutputDir  = "output_dir"
)

// DefaultOutputBase anchors per-document output directories when the
// upload does not name a base.
const DefaultOutputBase = "output"

// Stem returns the file name without directories or extension. It names
// the document's output directory, so siblings with distinct names get
// distinct directories.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Root is the batch-level output directory: <base>/<batchID>.
func Root(base, batchID string) string {
	return base + "/" + batchID
}

// OutputDir is one document's output directory:
// <base>/<batchID>/<stem>/.
func OutputDir(base, batchID, sourceName string) string {
	return Root(base, batchID) + "/" + Stem(sourceName) + "/"
}

// Plan expands the upload into one job spec per file. Sibling jobs share
// the batch id; everything document-specific travels as initial
// variables, so workers need nothing beyond the job row itself.
func Plan(batchID, outputBase string, files []models.BatchFile) []models.BatchJobSpec {
	if outputBase == "" {
		outputBase = DefaultOutputBase
	}

	specs := make([]models.BatchJobSpec, 0, len(files))
	for _, f := range files {
		specs = append(specs, models.BatchJobSpec{
			JobID:      uuid.New().String(),
			SourceName: f.Name,
			InitialVariables: map[string]string{
				VarInputText:  f.Content,
				VarSourceName: f.Name,
				VarBatchID:    batchID,
				VarOutputDir:  OutputDir(outputBase, batchID, f.Name),
			},
		})
	}
	return specs
}
