package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/obinexus/mmuoko-connect/internal/router"
	"github.com/obinexus/mmuoko-connect/internal/tone"
)

// route <content>: analyze, optionally verify, and distribute one piece of
// content to its platforms.
func routeCmd() *cobra.Command {
	var (
		cluster   string
		platforms []string
		verify    bool
	)
	cmd := &cobra.Command{
		Use:   "route <content>",
		Short: "Route content through ranking, verification, and platform fan-out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.Route(cmd.Context(), args[0], router.Options{
				Cluster:   cluster,
				Platforms: platforms,
				Verify:    verify,
			})
			if err != nil {
				return err
			}
			printRouteResult(cmd.OutOrStdout(), res, verify)
			return nil
		},
	}
	cmd.Flags().StringVar(&cluster, "cluster", "", "cluster the content belongs to")
	cmd.Flags().StringSliceVar(&platforms, "platforms", nil, "platforms to target (default: all registered)")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify coherence before distribution")
	return cmd
}

func printRouteResult(w io.Writer, res *router.RouteResult, verified bool) {
	m := res.Manifest
	fmt.Fprintf(w, "route      %s\n", m.RouteID)
	fmt.Fprintf(w, "schema     %s\n", m.Schema)
	fmt.Fprintf(w, "tone       %d %s  %s\n", m.Tone.Dominant, tone.LayerName(m.Tone.Dominant), m.Tone.Pattern)
	fmt.Fprintf(w, "priority   %.3f\n", m.Priority)
	if verified {
		fmt.Fprintf(w, "verified   %.4f\n", res.Verification.Coherence)
	}
	for _, name := range res.Result.Platforms() {
		out := res.Result[name]
		if out.Success {
			fmt.Fprintf(w, "  ok    %-12s %s\n", name, out.URL)
		} else {
			fmt.Fprintf(w, "  fail  %-12s %s\n", name, out.Error)
		}
	}
	fmt.Fprintf(w, "coherence  %.4f\n", res.Coherence)
	fmt.Fprintf(w, "engagement %d\n", res.Engagement)
}
