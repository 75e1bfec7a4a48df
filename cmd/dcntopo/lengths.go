package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcntopo/sampling"
)

func newLengthsCmd(a *app) *cobra.Command {
	var (
		tf       topoFlags
		samples  int
		workers  int
		fatTreeK int
	)
	cmd := &cobra.Command{
		Use:   "lengths",
		Short: "Compare server-pair path lengths against a fat-tree",
		Example: `  # ten 686-server samples next to the matching k=14 fat-tree
  dcntopo lengths --servers 686 --switches 245 --ports 14 --samples 10 --fattree-k 14`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tf.apply(cmd, a.cfg); err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("samples") {
				a.cfg.Sampling.Samples = samples
			}
			if fl.Changed("workers") {
				a.cfg.Sampling.Workers = workers
			}
			if fl.Changed("fattree-k") {
				a.cfg.Sampling.FatTreeK = fatTreeK
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			p := sampling.ParamsFrom(a.cfg)
			p.Logger, p.Metrics = a.log, a.reg
			rep, err := sampling.PathLengths(cmd.Context(), p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "run %s: %d topologies, %d stalled, %d unreachable pairs\n",
				rep.RunID, rep.Generated, rep.Stalled, rep.Unreachable)
			longest := rep.Jellyfish.MaxHops()
			if rep.FatTree != nil {
				longest = max(longest, rep.FatTree.MaxHops())
			}
			fmt.Fprintln(w, "hops  jellyfish  fattree")
			for h := 1; h <= longest; h++ {
				ft := "-"
				if rep.FatTree != nil {
					ft = fmt.Sprintf("%.4f", rep.FatTree.Fraction(h))
				}
				fmt.Fprintf(w, "%4d  %9.4f  %7s\n", h, rep.Jellyfish.Fraction(h), ft)
			}
			fmt.Fprintf(w, "mean  %9.4f", rep.Jellyfish.Mean())
			if rep.FatTree != nil {
				fmt.Fprintf(w, "  %7.4f", rep.FatTree.Mean())
			}
			fmt.Fprintln(w)

			return nil
		},
	}
	tf.register(cmd, false)
	cmd.Flags().IntVar(&samples, "samples", 0, "number of jellyfish samples")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size")
	cmd.Flags().IntVar(&fatTreeK, "fattree-k", 0, "fat-tree baseline k (0 disables)")

	return cmd
}
