package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simplegraph/betweenness"
	"github.com/katalvlaran/simplegraph/bfs"
	"github.com/katalvlaran/simplegraph/clique"
	"github.com/katalvlaran/simplegraph/dfs"
	"github.com/katalvlaran/simplegraph/loader"
)

type summaryDoc struct {
	Directed    bool     `yaml:"directed"`
	Vertices    int      `yaml:"vertices"`
	Edges       int      `yaml:"edges"`
	TotalWeight float64  `yaml:"total_weight"`
	Density     float64  `yaml:"density"`
	SelfLink    bool     `yaml:"self_link"`
	Connected   bool     `yaml:"connected"`
	Components  int      `yaml:"components"`
	Isolated    []string `yaml:"isolated"`
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE",
		Short: "Print size, weight, density and connectivity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			comps, err := bfs.Components(g)
			if err != nil {
				return err
			}
			st := g.Stats()
			doc := summaryDoc{
				Directed:    st.Directed,
				Vertices:    st.VertexCount,
				Edges:       st.EdgeCount,
				TotalWeight: st.TotalWeight,
				Density:     st.Density,
				SelfLink:    st.HasSelfLink,
				Connected:   dfs.IsConnected(g),
				Components:  len(comps),
				Isolated:    dfs.FindIsolated(g),
			}
			rows := [][]string{
				{"directed", strconv.FormatBool(doc.Directed)},
				{"vertices", humanize.Comma(int64(doc.Vertices))},
				{"edges", humanize.Comma(int64(doc.Edges))},
				{"total weight", ftoa(doc.TotalWeight)},
				{"density", ftoa(doc.Density)},
				{"self link", strconv.FormatBool(doc.SelfLink)},
				{"connected", strconv.FormatBool(doc.Connected)},
				{"components", strconv.Itoa(doc.Components)},
				{"isolated", strings.Join(doc.Isolated, " ")},
			}
			return a.printer(cmd.OutOrStdout()).emit(doc, nil, rows)
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "path FILE FROM TO",
		Short: "Print the first depth-first path, or every simple path with --all",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			var paths [][]string
			if all {
				paths, err = dfs.FindAllPaths(g, args[1], args[2])
			} else {
				var p []string
				p, err = dfs.FindPath(g, args[1], args[2])
				paths = [][]string{p}
			}
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(paths))
			for _, p := range paths {
				rows = append(rows, []string{strconv.Itoa(len(p) - 1), strings.Join(p, " -> ")})
			}
			return a.printer(cmd.OutOrStdout()).emit(map[string]any{"paths": paths}, []string{"HOPS", "PATH"}, rows)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "enumerate every simple path")
	return cmd
}

func newDiameterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diameter FILE",
		Short: "Print the hop diameter by exhaustive path search (small graphs only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			d := dfs.Diameter(g)
			text := strconv.Itoa(d)
			var doc any = d
			if d == dfs.Infinity {
				text, doc = "inf", "inf"
			}
			return a.printer(cmd.OutOrStdout()).emit(map[string]any{"diameter": doc}, nil, [][]string{{"diameter", text}})
		},
	}
}

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components FILE",
		Short: "List connected components in discovery order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			comps, err := bfs.Components(g)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(comps))
			for i, c := range comps {
				rows = append(rows, []string{strconv.Itoa(i), strconv.Itoa(len(c)), strings.Join(c, " ")})
			}
			return a.printer(cmd.OutOrStdout()).emit(map[string]any{"components": comps}, []string{"#", "SIZE", "VERTICES"}, rows)
		},
	}
}

type vertexScore struct {
	Vertex string  `yaml:"vertex"`
	Score  float64 `yaml:"score"`
}

type edgeScore struct {
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Score float64 `yaml:"score"`
}

func newBetweennessCmd(a *app) *cobra.Command {
	var (
		normalized bool
		edges      bool
		top        int
	)
	cmd := &cobra.Command{
		Use:   "betweenness FILE",
		Short: "Rank vertices (or edges with --edges) by weighted betweenness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if top < 0 {
				return fmt.Errorf("--top must be >= 0, got %d", top)
			}
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := betweenness.Compute(g, betweenness.WithNormalized(normalized))
			if err != nil {
				return err
			}
			p := a.printer(cmd.OutOrStdout())

			if edges {
				ranked := res.RankedEdges()
				if top > 0 && top < len(ranked) {
					ranked = ranked[:top]
				}
				doc := make([]edgeScore, 0, len(ranked))
				rows := make([][]string, 0, len(ranked))
				for _, s := range ranked {
					doc = append(doc, edgeScore{From: s.Key.From, To: s.Key.To, Score: s.Value})
					rows = append(rows, []string{s.Key.String(), ftoa(s.Value)})
				}
				return p.emit(map[string]any{"edges": doc}, []string{"EDGE", "SCORE"}, rows)
			}

			ranked := res.RankedVertices()
			if top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}
			doc := make([]vertexScore, 0, len(ranked))
			rows := make([][]string, 0, len(ranked))
			for _, s := range ranked {
				doc = append(doc, vertexScore{Vertex: s.Key, Score: s.Value})
				rows = append(rows, []string{s.Key, ftoa(s.Value)})
			}
			return p.emit(map[string]any{"vertices": doc}, []string{"VERTEX", "SCORE"}, rows)
		},
	}
	cmd.Flags().BoolVar(&normalized, "normalized", true, "divide scores by n(n-1)")
	cmd.Flags().BoolVar(&edges, "edges", false, "rank edges instead of vertices")
	cmd.Flags().IntVar(&top, "top", 0, "show only the first N entries (0 = all)")
	return cmd
}

func newCliquesCmd(a *app) *cobra.Command {
	var maxOnly bool
	cmd := &cobra.Command{
		Use:   "cliques FILE",
		Short: "List maximal cliques, or only the largest with --max",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			var cliques [][]string
			if maxOnly {
				best, err := clique.MaxClique(g)
				if err != nil {
					return err
				}
				if best != nil {
					cliques = [][]string{best}
				}
			} else if cliques, err = clique.FindCliques(g); err != nil {
				return err
			}
			rows := make([][]string, 0, len(cliques))
			for _, c := range cliques {
				rows = append(rows, []string{strconv.Itoa(len(c)), strings.Join(c, " ")})
			}
			return a.printer(cmd.OutOrStdout()).emit(map[string]any{"cliques": cliques}, []string{"SIZE", "MEMBERS"}, rows)
		},
	}
	cmd.Flags().BoolVar(&maxOnly, "max", false, "print only the largest clique")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Re-emit the graph in the text format or, with --format yaml, as a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd, args[0])
			if err != nil {
				return err
			}
			if a.cfg.Format == formatYAML {
				return loader.EncodeSnapshot(cmd.OutOrStdout(), g.Snapshot())
			}
			return loader.Dump(cmd.OutOrStdout(), g.Snapshot())
		},
	}
}
