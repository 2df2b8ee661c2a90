// Package monitor samples pipeline health on a fixed interval and renders it
// as a live terminal dashboard or plain text lines.
package monitor

// #region imports
import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
	"github.com/obinexus/mmuoko-connect/internal/feedback"
	"github.com/obinexus/mmuoko-connect/internal/rankstore"
)

// #endregion

// #region stats

// topNodeCount is how many ranked nodes a sample carries.
const topNodeCount = 5

// Stats is one sample of pipeline health.
type Stats struct {
	Coherence      float64
	Clusters       int
	TopNodes       []rankstore.NodeEntry
	LastScore      float64
	LastEngagement int
	CPUPercent     float64
	Goroutines     int
	Tick           time.Time
}

// #endregion stats

// #region sampler

// Sampler reads one Stats snapshot from the pipeline's stores.
type Sampler struct {
	store    *rankstore.Store
	recorder *feedback.Recorder // optional
}

// NewSampler creates a sampler. recorder may be nil when no engagement
// snapshot is kept.
func NewSampler(store *rankstore.Store, recorder *feedback.Recorder) *Sampler {
	return &Sampler{store: store, recorder: recorder}
}

// Sample reads the current pipeline state. It never fails; unavailable
// sources leave their fields zero.
func (s *Sampler) Sample() Stats {
	snap := s.store.Current()
	stats := Stats{
		Coherence:  snap.Coherence(),
		Clusters:   len(snap.Clusters),
		TopNodes:   snap.TopNodes(topNodeCount),
		Goroutines: runtime.NumGoroutine(),
		Tick:       time.Now().UTC(),
	}

	if usage, _ := cpu.Percent(0, false); len(usage) > 0 {
		stats.CPUPercent = usage[0]
	}

	if s.recorder != nil {
		if rec, err := s.recorder.Load(); err == nil {
			stats.LastScore = dispatch.Score(rec.Results)
			stats.LastEngagement = rec.Score
		}
	}
	return stats
}

// #endregion sampler
