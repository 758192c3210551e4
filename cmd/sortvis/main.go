// Command sortvis runs one sorting algorithm over a shuffled dataset and
// streams its instrumentation events to the log, followed by a metrics
// summary. It is a reference consumer of the engine's event stream.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ygrebnov/sortvis"
	"github.com/ygrebnov/sortvis/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	algorithm string
	size      uint
	speed     float64
	seed      int64
	events    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "sortvis",
		Short:         "Run a sorting algorithm and stream its instrumentation events",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", string(sortvis.Bubble),
		"algorithm to run, one of: "+algorithmList())
	cmd.Flags().UintVarP(&opts.size, "size", "n", 32, "dataset size")
	cmd.Flags().Float64Var(&opts.speed, "speed", 100,
		"pace setting; the per-step delay is max(1ms, 100ms/speed)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "shuffle seed (0 derives one from the clock)")
	cmd.Flags().BoolVar(&opts.events, "events", false, "log every event at debug level")
	return cmd
}

func algorithmList() string {
	names := make([]string, 0, len(sortvis.Algorithms()))
	for _, a := range sortvis.Algorithms() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

func run(cmd *cobra.Command, opts *options) error {
	log := logrus.New()
	if opts.events {
		log.SetLevel(logrus.DebugLevel)
	}

	alg := sortvis.Algorithm(opts.algorithm)
	if !alg.Valid() {
		return fmt.Errorf("unknown algorithm %q; valid: %s", opts.algorithm, algorithmList())
	}

	// Ctrl-C cancels the active run cooperatively via the engine context.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := metrics.NewBasicProvider()
	obs := sortvis.NewChannelObserver(1024)
	defer obs.Close()

	eng, err := sortvis.New(ctx,
		sortvis.WithSize(opts.size),
		sortvis.WithSeed(opts.seed),
		sortvis.WithSpeed(opts.speed),
		sortvis.WithMetrics(provider),
		sortvis.WithObserver(obs),
	)
	if err != nil {
		return err
	}
	defer eng.Close()

	var g errgroup.Group
	g.Go(func() error {
		for ev := range obs.C() {
			log.WithFields(logrus.Fields{
				"kind": ev.Kind.String(),
				"i":    ev.I,
				"j":    ev.J,
				"v":    ev.V,
				"w":    ev.W,
			}).Debug("event")
			if ev.Kind == sortvis.Done || ev.Kind == sortvis.Cancelled {
				return nil
			}
		}
		return nil
	})

	log.WithFields(logrus.Fields{"algorithm": string(alg), "size": opts.size}).Info("starting run")
	started, err := eng.Start(alg)
	if err != nil {
		return err
	}
	if !started {
		return fmt.Errorf("start rejected: a run is already active")
	}

	eng.Wait()
	if err := g.Wait(); err != nil {
		return err
	}

	snap := eng.Snapshot()
	log.WithFields(logrus.Fields{
		"algorithm":   string(snap.Algorithm),
		"state":       snap.State.String(),
		"comparisons": snap.Comparisons,
		"accesses":    snap.Accesses,
		"swaps":       snap.Swaps,
		"elapsed":     snap.Elapsed.String(),
	}).Info("run finished")
	return nil
}
