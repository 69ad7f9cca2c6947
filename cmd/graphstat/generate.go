package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/simplegraph/builder"
	"github.com/katalvlaran/simplegraph/core"
	"github.com/katalvlaran/simplegraph/loader"
)

// topologies maps a generate argument to its constructor and the number of
// size arguments it takes.
var topologies = map[string]struct {
	arity int
	build func(n []int, p float64) builder.Constructor
}{
	"path":      {1, func(n []int, _ float64) builder.Constructor { return builder.Path(n[0]) }},
	"cycle":     {1, func(n []int, _ float64) builder.Constructor { return builder.Cycle(n[0]) }},
	"star":      {1, func(n []int, _ float64) builder.Constructor { return builder.Star(n[0]) }},
	"wheel":     {1, func(n []int, _ float64) builder.Constructor { return builder.Wheel(n[0]) }},
	"complete":  {1, func(n []int, _ float64) builder.Constructor { return builder.Complete(n[0]) }},
	"bipartite": {2, func(n []int, _ float64) builder.Constructor { return builder.CompleteBipartite(n[0], n[1]) }},
	"grid":      {2, func(n []int, _ float64) builder.Constructor { return builder.Grid(n[0], n[1]) }},
	"random":    {1, func(n []int, p float64) builder.Constructor { return builder.RandomSparse(n[0], p) }},
}

func topologyNames() string {
	names := make([]string, 0, len(topologies))
	for k := range topologies {
		names = append(names, k)
	}
	slices.Sort(names)
	return strings.Join(names, "|")
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed       int64
		prob       float64
		minW, maxW float64
		letters    bool
	)
	cmd := &cobra.Command{
		Use:   "generate TOPOLOGY N [M]",
		Short: "Write a synthetic graph in the text format (or YAML with --format yaml)",
		Long: `generate builds one of the standard topologies and writes it to stdout.

Topologies: ` + topologyNames() + `. bipartite and grid take two sizes.
random takes --p and needs --seed unless p is 0 or 1. Edge weights are 1
unless --max-weight is set, in which case they are drawn uniformly from
[--min-weight, --max-weight) and rounded to two decimals.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			topo, ok := topologies[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown topology %q (want %s)", args[0], topologyNames())
			}
			if len(args)-1 != topo.arity {
				return fmt.Errorf("%s takes %d size argument(s), got %d", args[0], topo.arity, len(args)-1)
			}
			sizes := make([]int, 0, topo.arity)
			for _, s := range args[1:] {
				n, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("size %q: %w", s, err)
				}
				sizes = append(sizes, n)
			}

			var bopts []builder.BuilderOption
			if cmd.Flags().Changed("seed") {
				bopts = append(bopts, builder.WithSeed(seed))
			}
			if maxW > 0 {
				if minW < 0 || maxW < minW {
					return fmt.Errorf("weight range [%g, %g) is invalid", minW, maxW)
				}
				bopts = append(bopts, builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)))
			}
			if letters {
				bopts = append(bopts, builder.WithIDScheme(builder.ExcelColumnIDFn))
			}

			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(a.cfg.Directed), core.WithLogger(a.log)},
				bopts,
				topo.build(sizes, prob),
			)
			if err != nil {
				return err
			}
			a.log.Debug("graph generated",
				zap.String("topology", args[0]),
				zap.Int("vertices", g.Order()),
				zap.Int("edges", g.Size()))

			if a.cfg.Format == formatYAML {
				return loader.EncodeSnapshot(cmd.OutOrStdout(), g.Snapshot())
			}
			return loader.Dump(cmd.OutOrStdout(), g.Snapshot())
		},
	}
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", 0, "seed for random topologies and weights")
	f.Float64Var(&prob, "p", 0.5, "edge probability for the random topology")
	f.Float64Var(&minW, "min-weight", 1, "lower bound of drawn edge weights")
	f.Float64Var(&maxW, "max-weight", 0, "upper bound of drawn edge weights (0 keeps weight 1)")
	f.BoolVar(&letters, "letters", false, "label vertices A, B, ... instead of 0, 1, ...")
	return cmd
}
