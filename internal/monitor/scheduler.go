package monitor

// #region imports
import (
	"time"
)

// #endregion

// #region scheduler

// DefaultInterval is used when the scheduler is built without one.
const DefaultInterval = 2 * time.Second

// Scheduler samples stats on a fixed interval and delivers them on a
// buffered channel. A reader that falls behind loses samples, never blocks
// the loop.
type Scheduler struct {
	sampler  *Sampler
	interval time.Duration
	updates  chan Stats
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewScheduler creates a scheduler. A non-positive interval falls back to
// DefaultInterval.
func NewScheduler(sampler *Sampler, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		sampler:  sampler,
		interval: interval,
		updates:  make(chan Stats, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Updates returns the channel samples arrive on.
func (s *Scheduler) Updates() <-chan Stats {
	return s.updates
}

// Start begins the sampling loop. The first sample is taken immediately.
func (s *Scheduler) Start() {
	go s.run()
}

// Stop halts sampling and waits for the loop to exit. Call it once.
func (s *Scheduler) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

func (s *Scheduler) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.publish(s.sampler.Sample())
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.publish(s.sampler.Sample())
		}
	}
}

func (s *Scheduler) publish(stats Stats) {
	// Replace the pending sample rather than queueing behind a slow reader.
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- stats:
	default:
	}
}

// #endregion scheduler
