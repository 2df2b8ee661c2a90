package feedback

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
)

func sampleRecord(score int) EngagementRecord {
	return EngagementRecord{
		Timestamp: time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC),
		Score:     score,
		Results: dispatch.Result{
			"youtube": {Success: true, Platform: "youtube", URL: "https://youtube/abc",
				Engagement: dispatch.Engagement{Views: 100, Likes: 10, Shares: 5}},
			"twitter": {Platform: "twitter", Error: "rate limited"},
		},
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".obinexus-engagement")
	rec := NewRecorder(path)

	if err := rec.Record(sampleRecord(300)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := rec.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Score != 300 {
		t.Errorf("Score = %v", got.Score)
	}
	if len(got.Results) != 2 {
		t.Fatalf("Results has %d entries", len(got.Results))
	}
	if !got.Results["youtube"].Success || got.Results["youtube"].Engagement.Views != 100 {
		t.Errorf("youtube outcome = %+v", got.Results["youtube"])
	}
	if got.Results["twitter"].Error != "rate limited" {
		t.Errorf("twitter outcome = %+v", got.Results["twitter"])
	}
}

func TestRecorderOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".obinexus-engagement")
	rec := NewRecorder(path)

	if err := rec.Record(sampleRecord(120)); err != nil {
		t.Fatalf("first Record: %v", err)
	}
	if err := rec.Record(sampleRecord(540)); err != nil {
		t.Fatalf("second Record: %v", err)
	}

	got, err := rec.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Score != 540 {
		t.Errorf("Score = %v, want the later record", got.Score)
	}
}

func TestRecorderLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(filepath.Join(dir, ".obinexus-engagement"))
	if err := rec.Record(sampleRecord(300)); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != ".obinexus-engagement" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contents = %v, want only the snapshot", names)
	}
}

func TestRecorderLoadMissing(t *testing.T) {
	rec := NewRecorder(filepath.Join(t.TempDir(), ".obinexus-engagement"))
	_, err := rec.Load()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load err = %v, want fs.ErrNotExist", err)
	}
}
