package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/obinexus/mmuoko-connect/internal/tone"
)

const defaultRecommendCount = 10

// recommend [n]: list the top ranked nodes with their routing priority.
func recommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend [n]",
		Short: "List the top ranked nodes and their routing priority",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := defaultRecommendCount
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed <= 0 {
					return fmt.Errorf("invalid count %q", args[0])
				}
				n = parsed
			}

			recs := rt.Recommend(n)
			w := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(w, "no ranked nodes")
				return nil
			}

			fmt.Fprintf(w, "%-16s  %8s  %-12s  %-12s  %8s\n", "Node", "Rank", "Cluster", "Tone", "Priority")
			for _, rec := range recs {
				fmt.Fprintf(w, "%-16s  %8.3f  %-12s  %-12s  %8.3f\n",
					rec.Node, rec.Rank, rec.Cluster, tone.LayerName(rec.Layer), rec.Priority)
			}
			return nil
		},
	}
}
