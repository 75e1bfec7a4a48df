// Package builder defines shared constants used by topology builders, ensuring
// consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors and reports with the constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name of the orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodJellyfish is the canonical name for the Jellyfish constructor.
	MethodJellyfish = "Jellyfish"
	// MethodFatTree is the canonical name for the FatTree constructor.
	MethodFatTree = "FatTree"
)

//-----------------------------------------------------------------------------
// Topology names carried by Report.Topology
//-----------------------------------------------------------------------------

const (
	// TopologyJellyfish tags reports produced by Jellyfish.
	TopologyJellyfish = "jellyfish"
	// TopologyFatTree tags reports produced by FatTree.
	TopologyFatTree = "fattree"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

// MinSwitches is the smallest switch count accepted by Jellyfish.
const MinSwitches = 1

// MinPorts is the smallest per-switch port count accepted by Jellyfish.
const MinPorts = 1

// MinFatTreePorts is the smallest (even) port count of a fat-tree switch.
// k = 2 yields one core, two aggregation, two edge switches and two hosts.
const MinFatTreePorts = 2

//-----------------------------------------------------------------------------
// Repair budget
//-----------------------------------------------------------------------------

// RepairBudgetFactor scales the default repair ceiling: a Jellyfish run with
// S switches and P ports may perform at most RepairBudgetFactor·S·P repairs
// unless WithMaxRepairs overrides it.
const RepairBudgetFactor = 2

//-----------------------------------------------------------------------------
// Fat-tree labels and addressing
//-----------------------------------------------------------------------------

const (
	fatTreeCorePrefix = "c"
	fatTreeAggPrefix  = "a"
	fatTreeEdgePrefix = "e"
	fatTreeHostPrefix = "h"

	// fatTreeNet is the first octet of every fat-tree address.
	fatTreeNet = 10
	// fatTreeHostOffset maps host port p on an edge switch to octet p+2.
	fatTreeHostOffset = 2
)
