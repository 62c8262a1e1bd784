package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessflow/pipeline/pkg/models"
)

func TestStem(t *testing.T) {
	assert.Equal(t, "report", Stem("report.txt"))
	assert.Equal(t, "report.final", Stem("report.final.md"))
	assert.Equal(t, "notes", Stem("uploads/june/notes.docx"))
	assert.Equal(t, "bare", Stem("bare"))
}

func TestPlan(t *testing.T) {
	files := []models.BatchFile{
		{Name: "alpha.txt", Content: "first body"},
		{Name: "beta.txt", Content: "second body"},
	}

	specs := Plan("batch-1", "/data/out", files)
	require.Len(t, specs, 2)

	first := specs[0]
	assert.NotEmpty(t, first.JobID)
	assert.Equal(t, "alpha.txt", first.SourceName)
	assert.Equal(t, map[string]string{
		VarInputText:  "first body",
		VarSourceName: "alpha.txt",
		VarBatchID:    "batch-1",
		VarOutputDir:  "/data/out/batch-1/alpha/",
	}, first.InitialVariables)

	assert.Equal(t, "/data/out/batch-1/beta/", specs[1].InitialVariables[VarOutputDir])
	assert.NotEqual(t, specs[0].JobID, specs[1].JobID)
}

func TestPlan_DefaultBase(t *testing.T) {
	specs := Plan("batch-2", "", []models.BatchFile{{Name: "doc.txt", Content: "x"}})
	require.Len(t, specs, 1)
	assert.Equal(t, DefaultOutputBase+"/batch-2/doc/", specs[0].InitialVariables[VarOutputDir])
}
