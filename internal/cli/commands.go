package cli

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/internal/config"
)

// ErrMismatch is returned when the two engines disagree on a distance
// or on reachability.
var ErrMismatch = errors.New("cli: dijkstra and exhaustive search disagree")

// dijkstraOptions returns the configured search options plus a debug hook.
func (a *app) dijkstraOptions() []dijkstra.Option {
	return append(a.cfg.DijkstraOptions(), dijkstra.WithOnFinalize(func(label string, dist int64) error {
		a.logger.WithFields(log.Fields{"vertex": label, "dist": dist}).Debug("finalized")
		return nil
	}))
}

// dfsOptions returns the exhaustive search options bound to the command context.
func (a *app) dfsOptions(cmd *cobra.Command) []dfs.Option {
	return []dfs.Option{
		dfs.WithContext(cmd.Context()),
		dfs.WithOnPath(func(p core.Path) error {
			a.logger.WithField("path", p.String()).Trace("candidate")
			return nil
		}),
	}
}

func newDistancesCommand(a *app) *cobra.Command {
	var (
		gf     graphFlags
		source string
	)
	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print the shortest distance from --source to every reachable vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.build()
			if err != nil {
				return err
			}
			res, err := dijkstra.ShortestDistances(g, source, a.dijkstraOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, l := range res.Order() {
				d, _ := res.Distance(l)
				pred, ok := res.Predecessor(l)
				if !ok {
					pred = "-"
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", l, d, pred)
			}
			a.logger.WithFields(log.Fields{
				"source":      source,
				"reachable":   res.Len(),
				"unreachable": g.VertexCount() - res.Len(),
			}).Info("distances computed")

			return nil
		},
	}
	gf.bind(cmd.Flags())
	cmd.Flags().StringVarP(&source, "source", "s", "", "source vertex label")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newPathCommand(a *app) *cobra.Command {
	var (
		gf         graphFlags
		from, to   string
		exhaustive bool
		crossCheck bool
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the minimum-weight path between --from and --to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gf.build()
			if err != nil {
				return err
			}

			var p core.Path
			switch {
			case crossCheck:
				p, err = a.crossCheck(cmd, g, from, to)
			case exhaustive:
				p, err = dfs.MinimumWeightSimplePath(g, from, to, a.dfsOptions(cmd)...)
			default:
				p, err = dijkstra.ShortestPath(g, from, to, a.dijkstraOptions()...)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	gf.bind(cmd.Flags())
	cmd.Flags().StringVar(&from, "from", "", "start vertex label")
	cmd.Flags().StringVar(&to, "to", "", "end vertex label")
	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "enumerate every simple path instead of running dijkstra")
	cmd.Flags().BoolVar(&crossCheck, "cross-check", false, "run both engines and fail if their distances differ")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	cmd.MarkFlagsMutuallyExclusive("exhaustive", "cross-check")

	return cmd
}

// crossCheck runs both engines on one pair and returns the dijkstra path.
// Unreachable is a valid agreed outcome and is returned as such.
func (a *app) crossCheck(cmd *cobra.Command, g *core.Graph, from, to string) (core.Path, error) {
	fast, ferr := dijkstra.ShortestPath(g, from, to, a.dijkstraOptions()...)
	slow, serr := dfs.MinimumWeightSimplePath(g, from, to, a.dfsOptions(cmd)...)
	if serr == nil && a.cfg.MaxDistance != config.Unlimited && slow.Distance > a.cfg.MaxDistance {
		// The exhaustive search has no cap; apply the one dijkstra ran with.
		serr = errors.Wrapf(core.ErrUnreachable, "%s→%s: %d beyond max distance %d",
			from, to, slow.Distance, a.cfg.MaxDistance)
	}

	fastMissing := errors.Is(ferr, core.ErrUnreachable)
	slowMissing := errors.Is(serr, core.ErrUnreachable)
	switch {
	case ferr != nil && !fastMissing:
		return core.Path{}, ferr
	case serr != nil && !slowMissing:
		return core.Path{}, serr
	case fastMissing != slowMissing:
		return core.Path{}, errors.Wrapf(ErrMismatch, "%s→%s reachability: dijkstra %t, exhaustive %t",
			from, to, !fastMissing, !slowMissing)
	case fastMissing:
		return core.Path{}, ferr
	case fast.Distance != slow.Distance:
		return core.Path{}, errors.Wrapf(ErrMismatch, "%s→%s: dijkstra %s, exhaustive %s", from, to, fast, slow)
	}

	a.logger.WithFields(log.Fields{"dijkstra": fast.String(), "exhaustive": slow.String()}).Debug("engines agree")
	return fast, nil
}

func newVerifyCommand(a *app) *cobra.Command {
	var (
		vertices    int
		probability float64
		rounds      int
		seed        int64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check dijkstra against exhaustive search on random graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := a.cfg.Verify
			flags := cmd.Flags()
			if flags.Changed("vertices") {
				v.Vertices = vertices
			}
			if flags.Changed("probability") {
				v.Probability = probability
			}
			if flags.Changed("rounds") {
				v.Rounds = rounds
			}
			if flags.Changed("seed") {
				v.Seed = seed
			}
			a.cfg.Verify = v
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.verify(cmd)
		},
	}
	d := config.Default().Verify
	cmd.Flags().IntVar(&vertices, "vertices", d.Vertices, "vertices per random graph")
	cmd.Flags().Float64Var(&probability, "probability", d.Probability, "edge probability")
	cmd.Flags().IntVar(&rounds, "rounds", d.Rounds, "number of random graphs")
	cmd.Flags().Int64Var(&seed, "seed", d.Seed, "seed of the first graph; round i uses seed+i")

	return cmd
}

// verify builds Rounds random graphs and compares every ordered pair.
func (a *app) verify(cmd *cobra.Command) error {
	v := a.cfg.Verify
	pairs := 0
	for i := 0; i < v.Rounds; i++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		s := v.Seed + int64(i)
		g, err := builder.BuildGraph(v.Vertices, []builder.BuilderOption{
			builder.WithSeed(s),
			builder.WithExcelColumnIDs(),
			builder.WithUniformWeight(v.MinWeight, v.MaxWeight),
		}, builder.RandomSparse(v.Probability))
		if err != nil {
			return err
		}

		labels := g.Labels()
		for _, from := range labels {
			for _, to := range labels {
				if _, err = a.crossCheck(cmd, g, from, to); err != nil && !errors.Is(err, core.ErrUnreachable) {
					return errors.Wrapf(err, "seed %d", s)
				}
				pairs++
			}
		}
		a.logger.WithFields(log.Fields{"seed": s, "edges": g.EdgeCount()}).Debug("graph verified")
	}

	a.logger.WithFields(log.Fields{"graphs": v.Rounds, "pairs": pairs}).Info("verification passed")
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d graphs, %d pairs\n", v.Rounds, pairs)

	return nil
}
