package executor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/assessflow/pipeline/pkg/models"
)

// runArtifacts owns the per-run files: the append-only progress log and,
// at finalize, the structured dump. Only the scheduling loop touches it.
type runArtifacts struct {
	progressPath string
	dumpPath     string
	file         *os.File
	nodeLogs     []dumpNodeLog
}

// newRunArtifacts creates the log directory and opens the progress file.
// The progress log and the dump share one `<project>_<tag>_<ts>` stem so
// the pair of files for a run is greppable by either id.
func newRunArtifacts(dir, projectName, jobID, instanceID string, startedAt time.Time) (*runArtifacts, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create progress dir: %w", err)
	}

	tag := jobID
	if tag == "" {
		tag = instanceID
	}
	stem := fmt.Sprintf("%s_%s_%s", sanitizeFileName(projectName), tag, startedAt.UTC().Format("20060102T150405"))

	progressPath := filepath.Join(dir, stem+"_progress.log")
	f, err := os.OpenFile(progressPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open progress log: %w", err)
	}

	return &runArtifacts{
		progressPath: progressPath,
		dumpPath:     filepath.Join(dir, stem+".json"),
		file:         f,
	}, nil
}

// record appends the node's progress line and remembers the termination
// for the dump. Exactly one line per terminated node — viewers poll the
// file by line offset and audits count lines against the run's counters.
func (a *runArtifacts) record(label, nodeID string, r models.NodeResult, done, total int) {
	now := time.Now()
	line := formatProgressLine(now, label, nodeID, r, done, total)
	if _, err := a.file.WriteString(line + "\n"); err != nil {
		slog.Warn("Failed to write progress line", "path", a.progressPath, "error", err)
	}

	status := "completed"
	if !r.Success {
		status = "failed"
	}
	a.nodeLogs = append(a.nodeLogs, dumpNodeLog{
		NodeID:     nodeID,
		Label:      label,
		Status:     status,
		DurationMS: r.DurationMS,
		Error:      r.Error,
		At:         now.UTC(),
	})
}

func (a *runArtifacts) close() {
	if err := a.file.Close(); err != nil {
		slog.Warn("Failed to close progress log", "path", a.progressPath, "error", err)
	}
}

// formatProgressLine renders one termination:
// `<ISO8601> | <✅|❌> <STATUS> | <label> (<id>) | Duration: <d> | Progress: <done>/<total> (<pct>%)` plus
// an error excerpt for failures.
func formatProgressLine(now time.Time, label, nodeID string, r models.NodeResult, done, total int) string {
	mark, status := "✅", "COMPLETED"
	if !r.Success {
		mark, status = "❌", "FAILED"
	}
	pct := 0
	if total > 0 {
		pct = done * 100 / total
	}
	d := time.Duration(r.DurationMS) * time.Millisecond

	line := fmt.Sprintf("%s | %s %s | %s (%s) | Duration: %s | Progress: %d/%d (%d%%)",
		now.UTC().Format(time.RFC3339), mark, status, label, nodeID, d, done, total, pct)
	if r.Error != "" {
		line += " " + errorExcerpt(r.Error)
	}
	return line
}

// errorExcerpt flattens an error to one bounded line.
func errorExcerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > 200 {
		return string(runes[:200]) + "…"
	}
	return s
}

// sanitizeFileName keeps project names filesystem-safe in artifact stems.
func sanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "project"
	}
	return b.String()
}

// ProgressPage is one offset-polled read of a job's progress log.
type ProgressPage struct {
	Lines []string `json:"lines"`
	Total int      `json:"total"`
}

// ReadProgress returns the progress lines of the job's most recent run
// starting at the given line offset, plus the current total. A missing
// file yields an empty page — the job simply has not produced lines yet.
// Pollers detect file turnover (retry started a new run) by the total
// dropping below their offset and restart from zero.
func ReadProgress(dir, jobID string, offset int) (*ProgressPage, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_"+jobID+"_*_progress.log"))
	if err != nil {
		return nil, fmt.Errorf("scan progress logs: %w", err)
	}
	if len(matches) == 0 {
		return &ProgressPage{Lines: []string{}, Total: 0}, nil
	}

	// The timestamp sits at the end of the stem, so the newest run of the
	// job sorts last.
	sort.Strings(matches)
	raw, err := os.ReadFile(matches[len(matches)-1])
	if err != nil {
		return nil, fmt.Errorf("read progress log: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = []string{}
	}

	total := len(lines)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	return &ProgressPage{Lines: lines[offset:], Total: total}, nil
}

// RemoveArtifacts deletes the progress logs and dumps of every run recorded
// under the given tag (job id, or instance id for ad-hoc runs). A tag with
// no files is not an error. Returns the number of files removed.
func RemoveArtifacts(dir, tag string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_"+tag+"_*"))
	if err != nil {
		return 0, fmt.Errorf("scan run artifacts: %w", err)
	}
	removed := 0
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("remove run artifact: %w", err)
		}
		removed++
	}
	return removed, nil
}
