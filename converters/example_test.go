package converters_test

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dcntopo/converters"
	"github.com/katalvlaran/dcntopo/core"
)

// ExampleToDocument prints the YAML form of a two-switch topology.
func ExampleToDocument() {
	g := core.NewGraph()
	a, _ := g.AddSwitch(1)
	b, _ := g.AddSwitch(2)
	_ = g.Connect(a, b)

	doc, _ := converters.ToDocument(g, "pair")
	out, err := yaml.Marshal(doc)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _ = os.Stdout.Write(out)
	// Output:
	// name: pair
	// nodes:
	//     - id: 0
	//       label: sw0
	//       role: switch
	//       ports: 1
	//     - id: 1
	//       label: sw1
	//       role: switch
	//       ports: 2
	// links:
	//     - a: sw0
	//       b: sw1
}
