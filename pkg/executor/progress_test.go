package executor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/assessflow/pipeline/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatProgressLine(t *testing.T) {
	at := time.Date(2026, 8, 20, 14, 30, 5, 0, time.UTC)

	t.Run("completed", func(t *testing.T) {
		line := formatProgressLine(at, "Generate Report", "node-7",
			models.NodeResult{Success: true, DurationMS: 2300}, 3, 4)
		assert.Equal(t,
			"2026-08-20T14:30:05Z | ✅ COMPLETED | Generate Report (node-7) | Duration: 2.3s | Progress: 3/4 (75%)",
			line)
	})

	t.Run("failed carries error excerpt", func(t *testing.T) {
		line := formatProgressLine(at, "Score", "n2",
			models.NodeResult{Success: false, DurationMS: 150, Error: "provider exploded\nwith details"}, 4, 4)
		assert.True(t, strings.HasPrefix(line,
			"2026-08-20T14:30:05Z | ❌ FAILED | Score (n2) | Duration: 150ms | Progress: 4/4 (100%)"))
		assert.Contains(t, line, "provider exploded with details")
		assert.NotContains(t, line, "\n")
	})

	t.Run("zero total guards division", func(t *testing.T) {
		line := formatProgressLine(at, "X", "x", models.NodeResult{Success: true}, 0, 0)
		assert.Contains(t, line, "Progress: 0/0 (0%)")
	})
}

func TestErrorExcerpt(t *testing.T) {
	assert.Equal(t, "short", errorExcerpt("short"))
	assert.Equal(t, "a b c", errorExcerpt("a\nb\t c"))

	long := strings.Repeat("x", 300)
	got := errorExcerpt(long)
	assert.Equal(t, 201, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "My_Report_Run", sanitizeFileName("My Report Run"))
	assert.Equal(t, "big-five_v2", sanitizeFileName("big-five/v2"))
	assert.Equal(t, "project", sanitizeFileName(""))
}

func TestReadProgress(t *testing.T) {
	dir := t.TempDir()
	jobID := "job-abc"

	write := func(name string, lines ...string) {
		t.Helper()
		content := strings.Join(lines, "\n")
		if len(lines) > 0 {
			content += "\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	t.Run("missing file yields empty page", func(t *testing.T) {
		page, err := ReadProgress(dir, "nope", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Empty(t, page.Lines)
	})

	write("proj_job-abc_20260820T100000_progress.log", "line one", "line two", "line three")

	t.Run("full read", func(t *testing.T) {
		page, err := ReadProgress(dir, jobID, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, []string{"line one", "line two", "line three"}, page.Lines)
	})

	t.Run("offset returns only new lines", func(t *testing.T) {
		page, err := ReadProgress(dir, jobID, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, []string{"line three"}, page.Lines)
	})

	t.Run("offset past end is empty", func(t *testing.T) {
		page, err := ReadProgress(dir, jobID, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Total)
		assert.Empty(t, page.Lines)
	})

	t.Run("negative offset reads from start", func(t *testing.T) {
		page, err := ReadProgress(dir, jobID, -5)
		require.NoError(t, err)
		assert.Len(t, page.Lines, 3)
	})

	t.Run("newest run wins", func(t *testing.T) {
		// A retry started a fresh file with a later timestamp.
		write("proj_job-abc_20260820T110000_progress.log", "fresh")
		page, err := ReadProgress(dir, jobID, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
		assert.Equal(t, []string{"fresh"}, page.Lines)
	})

	t.Run("other jobs are not matched", func(t *testing.T) {
		write("proj_job-xyz_20260820T120000_progress.log", "not yours")
		page, err := ReadProgress(dir, jobID, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"fresh"}, page.Lines)
	})
}
