// Package dispatch fans content manifests out to platform adapters and
// reduces the per-platform outcomes into coherence and engagement figures.
package dispatch

// #region imports
import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/obinexus/mmuoko-connect/internal/tone"
)

// #endregion

// #region manifest

// Manifest is the immutable unit handed to the engine: one routing call's
// content, scores, and targets.
type Manifest struct {
	RouteID      string
	Timestamp    time.Time
	Content      string
	Tone         tone.Score
	GlyphSummary string
	Cluster      string
	Priority     float64
	Platforms    []string
	Schema       string
}

// NewManifest assembles the manifest for one routing call. The schema string
// identifies it as "<cluster>.<tone>.mmuoko-connect.obinexus.<epoch-ms>".
func NewManifest(content string, score tone.Score, cluster string, priority float64, platforms []string) *Manifest {
	now := time.Now().UTC()
	return &Manifest{
		RouteID:      uuid.New().String(),
		Timestamp:    now,
		Content:      content,
		Tone:         score,
		GlyphSummary: tone.Summary(score.Dominant),
		Cluster:      cluster,
		Priority:     priority,
		Platforms:    platforms,
		Schema: fmt.Sprintf("%s.%s.mmuoko-connect.obinexus.%d",
			cluster, strings.ToLower(tone.LayerName(score.Dominant)), now.UnixMilli()),
	}
}

// #endregion manifest
