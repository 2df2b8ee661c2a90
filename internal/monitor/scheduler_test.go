package monitor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
	"github.com/obinexus/mmuoko-connect/internal/feedback"
	"github.com/obinexus/mmuoko-connect/internal/rankstore"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const monitorRankFile = "[obinexus]\n" +
	"\tcenter = nnamdi\n" +
	"\tcoherence = 0.961\n" +
	"\n" +
	"[cluster \"research\"]\n" +
	"\trank = 1.5\n" +
	"\n" +
	"[cluster \"media\"]\n" +
	"\trank = 0.8\n" +
	"\n" +
	"[node \"uche\"]\n" +
	"\trank = 2.0\n" +
	"\tcluster = research\n"

func monitorStore(t *testing.T) *rankstore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".obinexus-rank")
	if err := os.WriteFile(path, []byte(monitorRankFile), 0o644); err != nil {
		t.Fatalf("write rank file: %v", err)
	}
	store := rankstore.NewStore(path)
	if err := store.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return store
}

func TestSamplerReadsPipelineState(t *testing.T) {
	recorder := feedback.NewRecorder(filepath.Join(t.TempDir(), ".obinexus-engagement"))
	err := recorder.Record(feedback.EngagementRecord{
		Timestamp: time.Now().UTC(),
		Score:     440,
		Results: dispatch.Result{
			"youtube": {Success: true, Engagement: dispatch.Engagement{Views: 100, Likes: 10, Shares: 5}},
			"tiktok":  {Success: true, Engagement: dispatch.Engagement{Views: 50, Likes: 5, Shares: 2}},
		},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	sampler := NewSampler(monitorStore(t), recorder)
	stats := sampler.Sample()

	if stats.Coherence != 0.961 {
		t.Errorf("Coherence = %v", stats.Coherence)
	}
	if stats.Clusters != 2 {
		t.Errorf("Clusters = %d", stats.Clusters)
	}
	if len(stats.TopNodes) != 1 || stats.TopNodes[0].Name != "uche" {
		t.Errorf("TopNodes = %+v", stats.TopNodes)
	}
	if stats.LastScore != 1.0 {
		t.Errorf("LastScore = %v, want 1.0 for an all-success record", stats.LastScore)
	}
	if stats.LastEngagement != 440 {
		t.Errorf("LastEngagement = %d", stats.LastEngagement)
	}
	if stats.Goroutines <= 0 {
		t.Errorf("Goroutines = %d", stats.Goroutines)
	}
	if stats.Tick.IsZero() {
		t.Errorf("Tick not set")
	}
}

func TestSamplerWithoutRecorder(t *testing.T) {
	sampler := NewSampler(monitorStore(t), nil)
	stats := sampler.Sample()
	if stats.LastScore != 0 || stats.LastEngagement != 0 {
		t.Errorf("stats = %+v, want zero feedback fields", stats)
	}
}

func TestSamplerEmptyStore(t *testing.T) {
	store := rankstore.NewStore(filepath.Join(t.TempDir(), "missing"))
	stats := NewSampler(store, nil).Sample()
	if stats.Coherence != rankstore.DefaultCoherence {
		t.Errorf("Coherence = %v, want the default", stats.Coherence)
	}
	if stats.Clusters != 0 || len(stats.TopNodes) != 0 {
		t.Errorf("stats = %+v, want no clusters or nodes", stats)
	}
}

func TestSchedulerDeliversSamples(t *testing.T) {
	sched := NewScheduler(NewSampler(monitorStore(t), nil), 10*time.Millisecond)
	sched.Start()
	defer sched.Stop()

	select {
	case stats := <-sched.Updates():
		if stats.Coherence != 0.961 {
			t.Errorf("Coherence = %v", stats.Coherence)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no sample arrived")
	}

	select {
	case <-sched.Updates():
	case <-time.After(2 * time.Second):
		t.Fatalf("no second sample arrived")
	}
}

func TestSchedulerSlowReaderNeverBlocksLoop(t *testing.T) {
	sched := NewScheduler(NewSampler(monitorStore(t), nil), 5*time.Millisecond)
	sched.Start()

	// Let several ticks pass with nobody reading.
	time.Sleep(50 * time.Millisecond)

	select {
	case <-sched.Updates():
	case <-time.After(2 * time.Second):
		t.Fatalf("no sample available after backlog")
	}

	sched.Stop()
}

func TestSchedulerStopWaitsForLoop(t *testing.T) {
	sched := NewScheduler(NewSampler(monitorStore(t), nil), 5*time.Millisecond)
	sched.Start()

	done := make(chan struct{})
	go func() {
		sched.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Stop did not return")
	}
}

func TestSchedulerIntervalFallback(t *testing.T) {
	sched := NewScheduler(NewSampler(monitorStore(t), nil), 0)
	if sched.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", sched.interval, DefaultInterval)
	}
}
