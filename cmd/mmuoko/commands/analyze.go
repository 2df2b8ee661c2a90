package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obinexus/mmuoko-connect/internal/tone"
)

// analyze <content>: score content against the tonal layers without routing.
func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <content>",
		Short: "Score content against the seven tonal layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score := rt.Analyze(args[0])
			w := cmd.OutOrStdout()

			fmt.Fprintf(w, "dominant  %d %s (%s)\n",
				score.Dominant, tone.LayerName(score.Dominant), tone.LayerGloss(score.Dominant))
			fmt.Fprintf(w, "pattern   %s\n", score.Pattern)
			fmt.Fprintf(w, "summary   %s\n", tone.Summary(score.Dominant))
			fmt.Fprintln(w)
			for layer := tone.LayerVision; layer >= tone.LayerFoundation; layer-- {
				fmt.Fprintf(w, "  %d %-12s %d\n", layer, tone.LayerName(layer), score.Counts[layer])
			}
			return nil
		},
	}
}
