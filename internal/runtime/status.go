package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/jmagar/claude-runner/internal/model"
	"github.com/jmagar/claude-runner/internal/ui"
)

const (
	runsDirName     = "runs"
	runsLockName    = ".lock"
	lockTimeout     = 5 * time.Second
	lockRetryDelay  = 100 * time.Millisecond
	recordExtension = ".json"
)

// RunsDir returns the directory holding run records under stateDir.
func RunsDir(stateDir string) string {
	return filepath.Join(stateDir, runsDirName)
}

// NewRunRecord builds a record for a freshly spawned process.
func NewRunRecord(pid int, binary string, args []string, workdir, output string) model.RunRecord {
	startTime, _ := processStartTime(pid)
	return model.RunRecord{
		ID:        uuid.NewString(),
		PID:       pid,
		Binary:    binary,
		Args:      args,
		Workdir:   workdir,
		Output:    output,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		StartTime: startTime,
	}
}

// WithRunsLock runs fn while holding the exclusive run-registry lock.
func WithRunsLock(stateDir string, fn func() error) error {
	dir := RunsDir(stateDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}
	lock := flock.New(filepath.Join(dir, runsLockName))

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire runs lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire runs lock: timed out after %s", lockTimeout)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			ui.PrintWarning(fmt.Sprintf("failed to release runs lock: %v", unlockErr))
		}
	}()

	return fn()
}

// WriteRunRecord persists rec under stateDir and returns the record path.
func WriteRunRecord(stateDir string, rec model.RunRecord) (string, error) {
	path := filepath.Join(RunsDir(stateDir), rec.ID+recordExtension)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run record: %w", err)
	}
	err = WithRunsLock(stateDir, func() error {
		return WriteFileAtomic(path, data, 0644)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// ListRunRecords returns all readable run records, newest first.
// A missing runs directory yields an empty list.
func ListRunRecords(stateDir string) ([]model.RunRecord, error) {
	entries, err := os.ReadDir(RunsDir(stateDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read runs directory: %w", err)
	}

	var records []model.RunRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExtension) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(RunsDir(stateDir), entry.Name()))
		if err != nil {
			continue
		}
		var rec model.RunRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartedAt > records[j].StartedAt
	})
	return records, nil
}

// FindRunByPID returns the most recent record for pid.
func FindRunByPID(stateDir string, pid int) (model.RunRecord, error) {
	records, err := ListRunRecords(stateDir)
	if err != nil {
		return model.RunRecord{}, err
	}
	for _, rec := range records {
		if rec.PID == pid {
			return rec, nil
		}
	}
	return model.RunRecord{}, fmt.Errorf("%w: pid %d", model.ErrRunNotFound, pid)
}

// PruneRunRecords removes records whose process has exited and returns how many were removed.
func PruneRunRecords(stateDir string) (int, error) {
	removed := 0
	err := WithRunsLock(stateDir, func() error {
		records, err := ListRunRecords(stateDir)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if RunState(rec) != model.RunStateExited {
				continue
			}
			path := filepath.Join(RunsDir(stateDir), rec.ID+recordExtension)
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove run record %s: %w", rec.ID, err)
			}
			removed++
		}
		return nil
	})
	return removed, err
}

// OwnsProcess reports whether rec.PID still belongs to the recorded run. A
// reused PID fails because the new process does not lead its own session or
// started at a different time.
func OwnsProcess(rec model.RunRecord) bool {
	if !IsProcessAlive(rec.PID) || !leadsOwnSession(rec.PID) {
		return false
	}
	if rec.StartTime == 0 {
		return true
	}
	started, ok := processStartTime(rec.PID)
	return ok && started == rec.StartTime
}

// CancelRun terminates the run behind rec. It returns model.ErrRunExited
// without signalling anything when the PID no longer belongs to the run.
func CancelRun(rec model.RunRecord) error {
	if !OwnsProcess(rec) {
		return fmt.Errorf("%w: pid %d", model.ErrRunExited, rec.PID)
	}
	return CancelProcessByPID(rec.PID)
}

// RunState reports whether the process behind rec is still running.
func RunState(rec model.RunRecord) string {
	if OwnsProcess(rec) {
		return model.RunStateRunning
	}
	return model.RunStateExited
}

// PrintRunStatus prints a table of recorded runs to the diagnostic stream.
func PrintRunStatus(stateDir string) error {
	records, err := ListRunRecords(stateDir)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		ui.PrintInfo(fmt.Sprintf("No background runs recorded in %s", RunsDir(stateDir)))
		return nil
	}

	ui.PrintHeader("Claude Runner Status")
	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 8},
		{Header: "PID", Width: 7, Align: "right"},
		{Header: "State", Width: 7},
		{Header: "Started", Width: 14},
		{Header: "Size", Width: 8, Align: "right"},
		{Header: "Output", Width: 17},
	})
	for _, rec := range records {
		state := RunState(rec)
		stateColor := ui.ColorGreen
		if state == model.RunStateExited {
			stateColor = ui.ColorYellow
		}
		table.AddRow(
			shortID(rec.ID),
			strconv.Itoa(rec.PID),
			stateColor+state+ui.ColorReset,
			describeStarted(rec.StartedAt),
			describeOutputSize(rec.Output),
			rec.Output,
		)
	}
	table.Print()
	return nil
}

// WriteFileAtomic writes data to a file atomically using a temp file and rename.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, mode); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func describeStarted(startedAt string) string {
	ts, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return "unknown"
	}
	return humanize.Time(ts)
}

func describeOutputSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "missing"
	}
	return humanize.Bytes(uint64(info.Size()))
}
