package router

// #region imports
import (
	"github.com/obinexus/mmuoko-connect/internal/priority"
)

// #endregion

// #region recommend

// Recommendation pairs a ranked node with the priority its cluster would
// route at right now.
type Recommendation struct {
	Node     string
	Cluster  string
	Layer    int
	Rank     float64
	Priority float64
}

// Recommend returns the top n nodes by rank, annotated with routing
// priority. Fewer than n nodes in the rank file means a shorter list.
func (r *Router) Recommend(n int) []Recommendation {
	snap := r.store.Current()
	nodes := snap.TopNodes(n)

	recs := make([]Recommendation, 0, len(nodes))
	for _, node := range nodes {
		recs = append(recs, Recommendation{
			Node:     node.Name,
			Cluster:  node.Cluster,
			Layer:    node.Layer,
			Rank:     node.Rank,
			Priority: priority.Calculate(snap, node.Cluster),
		})
	}
	return recs
}

// #endregion recommend
