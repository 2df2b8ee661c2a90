package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/obinexus/mmuoko-connect/internal/tone"
)

const defaultHistoryCount = 10

// history [n]: show the most recent routing calls from the route log.
func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [n]",
		Short: "Show the most recent routing calls",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if history == nil {
				return fmt.Errorf("route history unavailable")
			}

			n := defaultHistoryCount
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed <= 0 {
					return fmt.Errorf("invalid count %q", args[0])
				}
				n = parsed
			}

			entries, err := history.Recent(n)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "no routes logged")
				return nil
			}

			fmt.Fprintf(w, "%-20s  %-8s  %-12s  %-12s  %8s  %9s  %5s  %10s\n",
				"Time", "Route", "Cluster", "Tone", "Priority", "Coherence", "OK", "Engagement")
			for _, e := range entries {
				fmt.Fprintf(w, "%-20s  %-8s  %-12s  %-12s  %8.3f  %9.4f  %2d/%-2d  %10d\n",
					e.CreatedAt.Format("2006-01-02T15:04:05Z"), shortRouteID(e.RouteID),
					e.Cluster, tone.LayerName(e.DominantLayer), e.Priority, e.Coherence,
					e.PlatformsOK, e.PlatformsTotal, e.Engagement)
			}
			return nil
		},
	}
}

func shortRouteID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
