package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcntopo/sampling"
)

func newLinksCmd(a *app) *cobra.Command {
	var (
		tf      topoFlags
		pairs   int
		k       int
		ecmp    []int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Rank links by the number of distinct paths they carry",
		Example: `  # 8 shortest paths against 8- and 64-way ECMP
  dcntopo links --servers 686 --switches 245 --ports 14 --pairs 100 --k 8 --ecmp 8,64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tf.apply(cmd, a.cfg); err != nil {
				return err
			}
			fl := cmd.Flags()
			s := &a.cfg.Sampling
			if fl.Changed("pairs") {
				s.Pairs = pairs
			}
			if fl.Changed("k") {
				s.KPaths = k
			}
			if fl.Changed("ecmp") {
				s.ECMPWays = ecmp
			}
			if fl.Changed("workers") {
				s.Workers = workers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			p := sampling.ParamsFrom(a.cfg)
			p.Logger, p.Metrics = a.log, a.reg
			rep, err := sampling.LinkDiversity(cmd.Context(), p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "run %s: %d links, %d pairs, connected=%t\n",
				rep.RunID, rep.Stats.Edges, len(rep.Pairs), rep.Connected)
			fmt.Fprintf(w, "%-18s %6s %6s %6s %6s\n", "routing", "used", "p50", "p90", "max")
			for _, c := range rep.Curves {
				fmt.Fprintf(w, "%-18s %6d %6.0f %6.0f %6d\n", c.Name, c.Used(), c.Quantile(0.5), c.Quantile(0.9), c.Max())
			}

			return nil
		},
	}
	tf.register(cmd, false)
	fl := cmd.Flags()
	fl.IntVar(&pairs, "pairs", 0, "number of random server pairs")
	fl.IntVarP(&k, "k", "k", 0, "k of the k-shortest routing curve")
	fl.IntSliceVar(&ecmp, "ecmp", nil, "ECMP widths")
	fl.IntVar(&workers, "workers", 0, "worker pool size")

	return cmd
}
