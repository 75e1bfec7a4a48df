// Package converters moves topologies in and out of core.Graph.
//
//   - gonum: ToGonum exposes a topology as a gonum simple.UndirectedGraph
//     (node IDs preserved) so gonum's path and network algorithms can run
//     on it; GonumDistances is the hop-distance oracle used in tests.
//   - documents: ToDocument and FromDocument map a graph to a plain
//     Document of nodes and links; WriteFile and ReadFile persist it as YAML
//     (.yaml, .yml) or JSON (anything else).
//
// A graph loaded from a document is sealed, like one fresh from a builder.
package converters
