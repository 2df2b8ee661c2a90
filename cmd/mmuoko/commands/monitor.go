package commands

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/obinexus/mmuoko-connect/internal/monitor"
	"github.com/obinexus/mmuoko-connect/internal/rankstore"
)

// monitor: live view of coherence, rankings, and the last distribution.
func monitorCmd() *cobra.Command {
	var (
		interval time.Duration
		plain    bool
	)
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Watch pipeline coherence and rankings live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Reload the snapshot whenever the ranking job rewrites the file.
			if watcher, err := rankstore.NewWatcher(store); err != nil {
				log.Printf("[CLI] rank watcher disabled: %v", err)
			} else if err := watcher.Start(ctx); err != nil {
				log.Printf("[CLI] rank watcher disabled: %v", err)
			} else {
				defer watcher.Stop()
			}

			iv := interval
			if iv <= 0 {
				iv = cfg.MonitorInterval()
			}
			sched := monitor.NewScheduler(monitor.NewSampler(store, recorder), iv)

			if plain {
				return monitor.RunPlain(ctx, sched, cmd.OutOrStdout())
			}
			return monitor.RunDashboard(sched)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "sampling interval (default from config)")
	cmd.Flags().BoolVar(&plain, "plain", false, "print samples as plain lines instead of the dashboard")
	return cmd
}
