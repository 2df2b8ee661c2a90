// Package router runs the routing pipeline end to end: tone analysis, rank
// priority, the optional verification gate, platform fan-out, and feedback
// persistence.
package router

// #region imports
import (
	"context"
	"fmt"
	"log"

	"github.com/obinexus/mmuoko-connect/internal/dispatch"
	"github.com/obinexus/mmuoko-connect/internal/feedback"
	"github.com/obinexus/mmuoko-connect/internal/phantomid"
	"github.com/obinexus/mmuoko-connect/internal/priority"
	"github.com/obinexus/mmuoko-connect/internal/rankstore"
	"github.com/obinexus/mmuoko-connect/internal/tone"
)

// #endregion

// #region router-struct

// Deps bundles the collaborators a Router needs. Gate, Recorder, and History
// are optional; a nil Gate disables verification, nil persistence skips it.
type Deps struct {
	Store    *rankstore.Store
	Registry *dispatch.Registry
	Engine   *dispatch.Engine
	Gate     *phantomid.Gate
	Recorder *feedback.Recorder
	History  *feedback.History
}

// Router coordinates one routing call at a time. It is safe for concurrent
// use; all mutable state lives in the store and the persistence layers.
type Router struct {
	store    *rankstore.Store
	registry *dispatch.Registry
	engine   *dispatch.Engine
	gate     *phantomid.Gate
	recorder *feedback.Recorder
	history  *feedback.History
}

// New creates a fully wired router.
func New(d Deps) *Router {
	return &Router{
		store:    d.Store,
		registry: d.Registry,
		engine:   d.Engine,
		gate:     d.Gate,
		recorder: d.Recorder,
		history:  d.History,
	}
}

// #endregion router-struct

// #region options

// Options control one routing call.
type Options struct {
	// Cluster the content belongs to. Unknown clusters route at neutral
	// priority.
	Cluster string

	// Platforms to fan out to. Empty means every registered platform.
	Platforms []string

	// Verify runs the verification gate before any platform is touched.
	Verify bool
}

// RouteResult is what one routing call produced.
type RouteResult struct {
	Manifest     *dispatch.Manifest
	Result       dispatch.Result
	Coherence    float64
	Engagement   int
	Verification phantomid.Verification
}

// #endregion options

// #region route

// Route runs the pipeline on one piece of content. A failed verification
// aborts before any platform is touched. Platform failures are isolated and
// reported in the result; persistence failures only warn.
func (r *Router) Route(ctx context.Context, content string, opts Options) (*RouteResult, error) {
	snap := r.store.Current()
	score := tone.Analyze(content)
	prio := priority.Calculate(snap, opts.Cluster)

	if opts.Cluster != "" && prio == priority.NeutralPriority {
		if suggestion, ok := priority.SuggestCluster(snap, opts.Cluster); ok {
			log.Printf("[ROUTE] unknown cluster %q, closest match %q", opts.Cluster, suggestion)
		}
	}

	var verification phantomid.Verification
	if opts.Verify {
		if r.gate == nil {
			return nil, fmt.Errorf("verification requested but no verifier configured")
		}
		v, err := r.gate.Check(ctx, content)
		if err != nil {
			return nil, err
		}
		verification = v
	}

	platforms := opts.Platforms
	if len(platforms) == 0 {
		platforms = r.registry.Names()
	}

	manifest := dispatch.NewManifest(content, score, opts.Cluster, prio, platforms)
	result := r.engine.Distribute(ctx, manifest)
	coherence := dispatch.Score(result)
	engagement := dispatch.TotalEngagement(result)

	log.Printf("[ROUTE] %s cluster=%s tone=%d priority=%.3f ok=%d/%d coherence=%.4f engagement=%d",
		manifest.RouteID, opts.Cluster, score.Dominant, prio,
		result.Successes(), len(result), coherence, engagement)

	r.persist(manifest, result, score, prio, coherence, engagement)

	return &RouteResult{
		Manifest:     manifest,
		Result:       result,
		Coherence:    coherence,
		Engagement:   engagement,
		Verification: verification,
	}, nil
}

func (r *Router) persist(m *dispatch.Manifest, result dispatch.Result, score tone.Score, prio, coherence float64, engagement int) {
	if r.recorder != nil {
		rec := feedback.EngagementRecord{
			Timestamp: m.Timestamp,
			Score:     engagement,
			Results:   result,
		}
		if err := r.recorder.Record(rec); err != nil {
			log.Printf("[ROUTE] failed to record engagement: %v", err)
		}
	}
	if r.history != nil {
		entry := feedback.RouteEntry{
			RouteID:        m.RouteID,
			Cluster:        m.Cluster,
			DominantLayer:  score.Dominant,
			Priority:       prio,
			Coherence:      coherence,
			PlatformsTotal: len(result),
			PlatformsOK:    result.Successes(),
			Engagement:     engagement,
			CreatedAt:      m.Timestamp,
		}
		if err := r.history.LogRoute(entry); err != nil {
			log.Printf("[ROUTE] failed to log route: %v", err)
		}
	}
}

// #endregion route

// #region analyze

// Analyze scores content without routing it.
func (r *Router) Analyze(content string) tone.Score {
	return tone.Analyze(content)
}

// #endregion analyze
