package platform

// #region imports
import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
)

// #endregion

// #region simulated

// Engagement bounds for a simulated submission.
const (
	simMaxViews  = 1000
	simMaxLikes  = 100
	simMaxShares = 40
)

// simLatency keeps simulated submissions from returning instantly, so the
// fan-out paths behave like they would against a live endpoint.
const simLatency = 5 * time.Millisecond

// SimulatedAdapter fakes a platform for local runs. Engagement is drawn from
// a seedable source, so runs with the same seed reproduce.
type SimulatedAdapter struct {
	name string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedAdapter creates a simulated platform. The seed fixes the
// engagement sequence; pass time-derived seeds for varied runs.
func NewSimulatedAdapter(name string, seed int64) *SimulatedAdapter {
	return &SimulatedAdapter{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Name returns the platform identifier this adapter serves.
func (a *SimulatedAdapter) Name() string { return a.name }

// Submit fabricates a successful outcome after a short latency. A context
// that gives up first wins.
func (a *SimulatedAdapter) Submit(ctx context.Context, m *dispatch.Manifest) (dispatch.Outcome, error) {
	select {
	case <-ctx.Done():
		return dispatch.Outcome{}, ctx.Err()
	case <-time.After(simLatency):
	}

	a.mu.Lock()
	engagement := dispatch.Engagement{
		Views:  a.rng.Intn(simMaxViews),
		Likes:  a.rng.Intn(simMaxLikes),
		Shares: a.rng.Intn(simMaxShares),
	}
	a.mu.Unlock()

	return dispatch.Outcome{
		Success:    true,
		Platform:   a.name,
		URL:        fmt.Sprintf("https://%s.sim/%s", a.name, shortID(m.RouteID)),
		Engagement: engagement,
	}, nil
}

func shortID(routeID string) string {
	if len(routeID) > 8 {
		return routeID[:8]
	}
	return routeID
}

// #endregion simulated
