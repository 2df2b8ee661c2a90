// Package feedback persists what distributions came back with: the latest
// engagement snapshot as a small JSON file, and the full route log in SQLite.
package feedback

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
)

// #endregion

// #region record

// EngagementRecord is the snapshot written after each distribution and read
// by the next external ranking run. Score is the weighted engagement total.
// Each routing call replaces the previous record wholesale.
type EngagementRecord struct {
	Timestamp time.Time       `json:"timestamp"`
	Score     int             `json:"score"`
	Results   dispatch.Result `json:"results"`
}

// #endregion record

// #region recorder

// Recorder owns the engagement snapshot file.
type Recorder struct {
	path string
}

// NewRecorder creates a recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Path returns the snapshot file location.
func (r *Recorder) Path() string { return r.path }

// Record writes the snapshot, replacing any previous one. The write goes
// through a temp file and rename so readers never see a torn record.
func (r *Recorder) Record(rec EngagementRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal engagement: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".engagement-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write engagement: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}

// Load reads the last snapshot back.
func (r *Recorder) Load() (EngagementRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return EngagementRecord{}, fmt.Errorf("read engagement: %w", err)
	}
	var rec EngagementRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return EngagementRecord{}, fmt.Errorf("unmarshal engagement: %w", err)
	}
	return rec, nil
}

// #endregion recorder
