// Package priority derives a routing priority from the rank snapshot and a
// requested cluster.
package priority

// #region imports
import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/obinexus/mmuoko-connect/internal/rankstore"
)

// #endregion

// NeutralPriority is returned for clusters the snapshot does not know.
const NeutralPriority = 1.0

// #region calculate

// Calculate returns clusterRank * centerCoherence for a known cluster, or
// the neutral 1.0 for an unknown one. The value is unbounded above; it ranks
// content for display and never gates anything.
func Calculate(snap *rankstore.Snapshot, cluster string) float64 {
	rank, ok := snap.ClusterRank(cluster)
	if !ok {
		return NeutralPriority
	}
	return rank * snap.Coherence()
}

// #endregion calculate

// #region suggest

// suggestMaxDistance caps how far a typo may drift before no suggestion is
// offered.
const suggestMaxDistance = 5

// SuggestCluster returns the known cluster closest to name by edit
// distance, for "did you mean" output when a routing call names an unknown
// cluster. No suggestion is offered for exact matches, empty snapshots, or
// anything further than suggestMaxDistance edits away.
func SuggestCluster(snap *rankstore.Snapshot, name string) (string, bool) {
	if _, ok := snap.ClusterRank(name); ok {
		return "", false
	}

	lower := strings.ToLower(name)
	best := ""
	bestDist := suggestMaxDistance + 1
	for _, candidate := range snap.ClusterNames() {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(candidate))
		if dist < bestDist {
			bestDist = dist
			best = candidate
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// #endregion suggest
