package builder_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
)

// TestJellyfishInvariants holds for any parameter set: a shape whose switch
// ports can be paired returns a valid, terminal, reproducible graph, and
// any other shape stalls.
func TestJellyfishInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("generated fabrics respect port and server rules", prop.ForAll(
		func(switches, ports, load int, seed int64) bool {
			servers := switches * ports * load / 100
			g, err := builder.NewJellyfish(servers, switches, ports, builder.WithSeed(seed))
			if !feasible(servers, switches, ports) {
				return errors.Is(err, builder.ErrGenerationStalled)
			}
			if err != nil {
				return false
			}
			if g.Validate() != nil || len(g.Servers()) != servers {
				return false
			}
			for _, sw := range g.Switches() {
				deg, _ := g.Degree(sw)
				if deg > ports {
					return false
				}
			}
			st := g.Stats()
			terminal := st.FreeSwitches == 0 || (st.FreeSwitches == 1 && st.FreePorts == 1)

			return terminal
		},
		gen.IntRange(2, 24),
		gen.IntRange(2, 8),
		gen.IntRange(0, 60),
		gen.Int64Range(0, 1<<20),
	))

	properties.Property("same seed reproduces the edge set", prop.ForAll(
		func(switches, ports int, seed int64) bool {
			servers := switches
			a, errA := builder.NewJellyfish(servers, switches, ports, builder.WithSeed(seed))
			b, errB := builder.NewJellyfish(servers, switches, ports, builder.WithSeed(seed))
			if !feasible(servers, switches, ports) {
				return errors.Is(errA, builder.ErrGenerationStalled) && errors.Is(errB, builder.ErrGenerationStalled)
			}
			if errA != nil || errB != nil {
				return false
			}

			return edgesEqual(a.Edges(), b.Edges())
		},
		gen.IntRange(3, 20),
		gen.IntRange(2, 6),
		gen.Int64Range(0, 1<<20),
	))

	properties.TestingRun(t)
}

func TestJellyfish_FeasibleShapesComplete(t *testing.T) {
	shapes := []struct{ servers, switches, ports int }{
		{10, 7, 6},
		{12, 5, 5},
		{21, 6, 7},
		{28, 8, 7},
		{24, 12, 5},
	}
	for _, sh := range shapes {
		require.True(t, feasible(sh.servers, sh.switches, sh.ports))
		for seed := int64(1); seed <= 30; seed++ {
			g, err := builder.NewJellyfish(sh.servers, sh.switches, sh.ports, builder.WithSeed(seed))
			require.NoError(t, err, "shape %v seed %d", sh, seed)
			require.Zero(t, g.Stats().FreePorts, "shape %v seed %d", sh, seed)
		}
	}
}

// feasible reports whether the switch ports left after server attachment
// can be paired into a simple graph, allowing one port to stay unused when
// their total is odd.
func feasible(servers, switches, ports int) bool {
	per := (servers + switches - 1) / switches
	left := make([]int, switches)
	attached := 0
	for i := range left {
		n := min(per, servers-attached)
		attached += n
		left[i] = ports - n
	}

	total := 0
	for _, d := range left {
		total += d
	}
	if total%2 == 0 {
		return graphical(left)
	}
	for i, d := range left {
		if d == 0 {
			continue
		}
		seq := slices.Clone(left)
		seq[i]--
		if graphical(seq) {
			return true
		}
	}

	return false
}

// graphical applies the Erdős-Gallai test to an even-sum degree sequence.
func graphical(deg []int) bool {
	d := slices.Clone(deg)
	slices.SortFunc(d, func(a, b int) int { return b - a })
	prefix := 0
	for k := 1; k <= len(d); k++ {
		prefix += d[k-1]
		bound := k * (k - 1)
		for _, x := range d[k:] {
			bound += min(x, k)
		}
		if prefix > bound {
			return false
		}
	}

	return true
}

func edgesEqual(a, b []core.Edge) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
