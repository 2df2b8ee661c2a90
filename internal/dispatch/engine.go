package dispatch

// #region imports
import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// #endregion

// #region engine

// DefaultSubmitTimeout bounds one adapter call when the engine is built
// without an explicit timeout.
const DefaultSubmitTimeout = 10 * time.Second

// Engine fans a manifest out to its platforms. Each adapter runs in its own
// goroutine; one platform failing never aborts the others.
type Engine struct {
	registry *Registry
	timeout  time.Duration
}

// NewEngine creates an engine over the given registry. A non-positive timeout
// falls back to DefaultSubmitTimeout.
func NewEngine(registry *Registry, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	return &Engine{registry: registry, timeout: timeout}
}

// Distribute submits the manifest to every platform it names. Unknown
// platforms and adapter errors become failed outcomes for that platform
// alone; the result always carries one entry per requested platform, keyed
// by name so completion order cannot change it.
func (e *Engine) Distribute(ctx context.Context, m *Manifest) Result {
	result := make(Result, len(m.Platforms))
	var mu sync.Mutex

	record := func(platform string, out Outcome) {
		out.Platform = platform
		mu.Lock()
		defer mu.Unlock()
		result[platform] = out
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, platform := range m.Platforms {
		platform := platform // per-iteration copy; required under the go 1.21 directive
		eg.Go(func() error {
			adapter, err := e.registry.Get(platform)
			if err != nil {
				record(platform, Outcome{Error: err.Error()})
				return nil
			}
			out, err := e.submit(egCtx, adapter, m)
			if err != nil {
				record(platform, Outcome{Error: err.Error()})
				return nil
			}
			record(platform, out)
			return nil
		})
	}
	eg.Wait()
	return result
}

func (e *Engine) submit(ctx context.Context, adapter Adapter, m *Manifest) (Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return adapter.Submit(ctx, m)
}

// #endregion engine
