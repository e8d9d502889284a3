// Package builder defines shared constants used by graph constructors,
// ensuring consistent defaults and validation across all topologies.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodEdges is the canonical name for the Edges constructor.
	MethodEdges = "Edges"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// HubVertex is the local index of the hub in Star and Wheel.
// With the default offset it is vertex 0, the vertex whose label the wheel
// search pins to 0.
const HubVertex = 0

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle.
// A cycle with fewer than 3 nodes needs a loop or a parallel edge.
const MinCycleNodes = 3

// MinPathNodes is the smallest size for a path (a single vertex, no edges).
const MinPathNodes = 1

// MinStarNodes is the smallest size for a star: hub plus one leaf.
const MinStarNodes = 2

// MinWheelRim is the smallest outer-cycle length of a wheel W_n.
// W_3 is K_4.
const MinWheelRim = 3

// MinCompleteNodes is the smallest K_n.
const MinCompleteNodes = 1

// MinPartition is the smallest side of K_{m,n}.
const MinPartition = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
const MinGridDim = 1
