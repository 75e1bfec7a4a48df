package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcntopo/bfs"
	"github.com/katalvlaran/dcntopo/converters"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		tf  topoFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a topology and print its summary",
		Example: `  # 686 servers on 245 14-port switches
  dcntopo generate --servers 686 --switches 245 --ports 14 --seed 7

  # k=8 fat-tree written as YAML
  dcntopo generate --kind fattree --ports 8 --out ft8.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.topology(cmd, &tf)
			if err != nil {
				return err
			}
			comps, err := bfs.Components(g)
			if err != nil {
				return err
			}

			s := g.Stats()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "kind:          %s\n", a.cfg.Topology.Kind)
			fmt.Fprintf(w, "switches:      %d\n", s.Switches)
			fmt.Fprintf(w, "servers:       %d\n", s.Servers)
			fmt.Fprintf(w, "links:         %d (%d between switches)\n", s.Edges, s.SwitchLinks)
			fmt.Fprintf(w, "free ports:    %d on %d switches\n", s.FreePorts, s.FreeSwitches)
			fmt.Fprintf(w, "components:    %d\n", len(comps))

			if out != "" {
				if err = converters.WriteFile(out, g); err != nil {
					return err
				}
				fmt.Fprintf(w, "written:       %s\n", out)
			}

			return nil
		},
	}
	tf.register(cmd, false)
	cmd.Flags().StringVar(&out, "out", "", "write the topology document (.yaml, .yml or .json)")

	return cmd
}
