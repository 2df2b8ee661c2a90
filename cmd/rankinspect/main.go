package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/obinexus/mmuoko-connect/internal/rankstore"
)

// #region main

func main() {
	file := flag.String("file", ".obinexus-rank", "path to the rank file")
	top := flag.Int("top", 10, "show N top nodes")
	cluster := flag.String("cluster", "", "show a single cluster's section")
	jsonOut := flag.Bool("json", false, "output as JSON instead of tables")
	flag.Parse()

	snap, err := rankstore.Load(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load rank file: %v\n", err)
		os.Exit(1)
	}

	if *cluster != "" {
		if err := runClusterMode(snap, *cluster, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := runSummaryMode(snap, *top, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region summary-mode

type clusterRow struct {
	Name string  `json:"name"`
	Rank float64 `json:"rank"`
}

type nodeRow struct {
	Name    string  `json:"name"`
	Rank    float64 `json:"rank"`
	Cluster string  `json:"cluster,omitempty"`
	Layer   int     `json:"layer,omitempty"`
}

type summaryOutput struct {
	Center    string       `json:"center"`
	Coherence float64      `json:"coherence"`
	Clusters  []clusterRow `json:"clusters"`
	Nodes     []nodeRow    `json:"nodes"`
}

func runSummaryMode(snap *rankstore.Snapshot, top int, jsonOut bool) error {
	out := summaryOutput{
		Center:    snap.CenterNode(),
		Coherence: snap.Coherence(),
	}
	for _, name := range snap.ClusterNames() {
		rank, _ := snap.ClusterRank(name)
		out.Clusters = append(out.Clusters, clusterRow{Name: name, Rank: rank})
	}
	for _, node := range snap.TopNodes(top) {
		out.Nodes = append(out.Nodes, nodeRow{
			Name: node.Name, Rank: node.Rank, Cluster: node.Cluster, Layer: node.Layer,
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Center:    %s\n", out.Center)
	fmt.Printf("Coherence: %.4f\n", out.Coherence)

	fmt.Printf("\nClusters:\n")
	if len(out.Clusters) == 0 {
		fmt.Println("  (none)")
	} else {
		fmt.Printf("  %-16s  %8s\n", "Name", "Rank")
		for _, c := range out.Clusters {
			fmt.Printf("  %-16s  %8.3f\n", c.Name, c.Rank)
		}
	}

	fmt.Printf("\nTop nodes:\n")
	if len(out.Nodes) == 0 {
		fmt.Println("  (none)")
	} else {
		fmt.Printf("  %-16s  %8s  %-12s  %s\n", "Node", "Rank", "Cluster", "Layer")
		for _, n := range out.Nodes {
			fmt.Printf("  %-16s  %8.3f  %-12s  %d\n", n.Name, n.Rank, n.Cluster, n.Layer)
		}
	}
	return nil
}

// #endregion summary-mode

// #region cluster-mode

func runClusterMode(snap *rankstore.Snapshot, name string, jsonOut bool) error {
	section, ok := snap.Clusters[name]
	if !ok {
		return fmt.Errorf("no cluster %q (have: %v)", name, snap.ClusterNames())
	}

	if jsonOut {
		return printJSON(map[string]rankstore.Section{name: section})
	}

	fmt.Printf("[cluster %q]\n", name)
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-12s %s\n", k, section[k])
	}
	return nil
}

// #endregion cluster-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
