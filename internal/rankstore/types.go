package rankstore

// #region imports
import (
	"math"
	"sort"
	"strconv"
)

// #endregion

var negInf = math.Inf(-1)

// DefaultCoherence is the network coherence floor assumed when the rank file
// is missing or carries no parseable coherence value.
const DefaultCoherence = 0.954

// #region snapshot

// Section holds the key/value pairs of one block in the rank file.
type Section map[string]string

// Snapshot is one immutable load of the rank file. It is replaced wholesale
// on reload and never mutated in place.
type Snapshot struct {
	Center   Section
	Clusters map[string]Section
	Nodes    map[string]Section

	// NodeOrder preserves node file order for the stable TopNodes tie-break.
	NodeOrder []string
}

// NewSnapshot returns an empty snapshot carrying only defaults.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Center:   Section{},
		Clusters: map[string]Section{},
		Nodes:    map[string]Section{},
	}
}

// #endregion snapshot

// #region accessors

// Coherence returns the center coherence value, or DefaultCoherence when the
// key is absent or unparseable.
func (s *Snapshot) Coherence() float64 {
	if v, ok := s.Center["coherence"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return DefaultCoherence
}

// CenterNode returns the name of the center node, or "".
func (s *Snapshot) CenterNode() string {
	return s.Center["center"]
}

// ClusterRank reports whether the cluster exists and its parsed rank.
// A present cluster with a missing or unparseable rank reports rank 0.
func (s *Snapshot) ClusterRank(name string) (float64, bool) {
	sec, ok := s.Clusters[name]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(sec["rank"], 64)
	if err != nil {
		return 0, true
	}
	return f, true
}

// ClusterNames returns the cluster names in sorted order.
func (s *Snapshot) ClusterNames() []string {
	names := make([]string, 0, len(s.Clusters))
	for name := range s.Clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// #endregion accessors

// #region top-nodes

// NodeEntry is one node row surfaced by TopNodes.
type NodeEntry struct {
	Name    string
	Rank    float64
	Layer   int
	Cluster string
}

// TopNodes returns the n highest-ranked nodes. Missing or unparseable ranks
// sort below every numeric rank; ties keep file order.
func (s *Snapshot) TopNodes(n int) []NodeEntry {
	entries := make([]NodeEntry, 0, len(s.NodeOrder))
	for _, name := range s.NodeOrder {
		sec := s.Nodes[name]
		entry := NodeEntry{
			Name:    name,
			Cluster: sec["cluster"],
		}
		if f, err := strconv.ParseFloat(sec["rank"], 64); err == nil {
			entry.Rank = f
		} else {
			entry.Rank = negInf
		}
		if l, err := strconv.Atoi(sec["layer"]); err == nil {
			entry.Layer = l
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank > entries[j].Rank
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	// Unranked entries still display as zero, not -Inf.
	for i := range entries {
		if entries[i].Rank == negInf {
			entries[i].Rank = 0
		}
	}
	return entries
}

// #endregion top-nodes
