// Package commands wires the mmuoko CLI: configuration, the rank store, the
// platform registry, and the router every subcommand shares.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/obinexus/mmuoko-connect/internal/config"
	"github.com/obinexus/mmuoko-connect/internal/dispatch"
	"github.com/obinexus/mmuoko-connect/internal/feedback"
	"github.com/obinexus/mmuoko-connect/internal/phantomid"
	"github.com/obinexus/mmuoko-connect/internal/platform"
	"github.com/obinexus/mmuoko-connect/internal/rankstore"
	"github.com/obinexus/mmuoko-connect/internal/router"
)

var (
	cfgPath string

	cfg      *config.Config
	store    *rankstore.Store
	registry *dispatch.Registry
	recorder *feedback.Recorder
	history  *feedback.History
	rt       *router.Router

	closers []io.Closer
)

func Execute() error {
	root := &cobra.Command{
		Use:           "mmuoko",
		Short:         "Ranking-weighted content routing for the obinexus network",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}

			store = rankstore.NewStore(cfg.RankFile)
			var rec *rankstore.Recomputer
			if len(cfg.Ranking.Recompute) > 0 {
				rec = &rankstore.Recomputer{Argv: cfg.Ranking.Recompute}
			}
			if err := store.EnsureLoaded(cmd.Context(), rec); err != nil {
				if !errors.Is(err, rankstore.ErrNoRankingData) {
					return err
				}
				log.Printf("[CLI] no ranking data, routing on defaults: %v", err)
			}

			specs := make([]platform.Spec, 0, len(cfg.Dispatch.Platforms))
			for _, p := range cfg.Dispatch.Platforms {
				specs = append(specs, platform.Spec{
					Name:     p.Name,
					Kind:     p.Kind,
					Endpoint: p.Endpoint,
					Seed:     p.Seed,
				})
			}
			registry, err = platform.BuildRegistry(specs, nil)
			if err != nil {
				return err
			}

			var gate *phantomid.Gate
			if cfg.Verify.Enabled {
				client, cerr := phantomid.NewClient(cfg.Verify.Addr, cfg.VerifyTimeout())
				if cerr != nil {
					return fmt.Errorf("connect verifier: %w", cerr)
				}
				closers = append(closers, client)
				gate = phantomid.NewGate(client, phantomid.GateConfig{Threshold: cfg.Verify.Threshold})
			}

			recorder = feedback.NewRecorder(cfg.EngagementFile)
			if h, herr := feedback.NewHistory(cfg.HistoryDB); herr != nil {
				log.Printf("[CLI] route history disabled: %v", herr)
			} else {
				history = h
				closers = append(closers, h)
			}

			rt = router.New(router.Deps{
				Store:    store,
				Registry: registry,
				Engine:   dispatch.NewEngine(registry, cfg.DispatchTimeout()),
				Gate:     gate,
				Recorder: recorder,
				History:  history,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			for _, c := range closers {
				if err := c.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "close: %v\n", err)
				}
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "mmuoko.yaml", "config file path")

	root.AddCommand(routeCmd(), analyzeCmd(), recommendCmd(), monitorCmd(), historyCmd())
	return root.Execute()
}
