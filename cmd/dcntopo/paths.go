package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/metrics"
	"github.com/katalvlaran/dcntopo/yen"
)

func newPathsCmd(a *app) *cobra.Command {
	var (
		tf topoFlags
		k  int
	)
	cmd := &cobra.Command{
		Use:   "paths <from> <to>",
		Short: "List the k shortest paths between two nodes",
		Example: `  dcntopo paths --kind fattree --ports 4 h0 h15 --k 8
  dcntopo paths --in topo.yaml sv0 sv9`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.topology(cmd, &tf)
			if err != nil {
				return err
			}
			from, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			to, err := resolve(g, args[1])
			if err != nil {
				return err
			}

			start := time.Now()
			paths, err := yen.KShortestPaths(g, from, to, k)
			if err != nil {
				return err
			}
			hops := make([]int, len(paths))
			for i, p := range paths {
				hops[i] = p.Hops()
			}
			a.reg.ObservePath(metrics.KindKShortest, time.Since(start), hops...)

			w := cmd.OutOrStdout()
			if len(paths) == 0 {
				fmt.Fprintf(w, "no path from %s to %s\n", args[0], args[1])
				return nil
			}
			for i, p := range paths {
				labels := make([]string, len(p))
				for j, id := range p {
					n, _ := g.Node(id)
					labels[j] = n.Label
				}
				fmt.Fprintf(w, "%3d  %2d hops  %s\n", i+1, p.Hops(), strings.Join(labels, " "))
			}

			return nil
		},
	}
	tf.register(cmd, true)
	cmd.Flags().IntVarP(&k, "k", "k", 8, "number of paths")

	return cmd
}

// resolve maps a node label to its handle.
func resolve(g *core.Graph, label string) (core.NodeID, error) {
	id, ok := g.Lookup(label)
	if !ok {
		return -1, fmt.Errorf("unknown node %q", label)
	}

	return id, nil
}
