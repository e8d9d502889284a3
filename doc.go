// Package lvlabel enumerates constrained integer labelings of small graphs
// and sets by exhaustive backtracking.
//
// What is lvlabel?
//
//	A compact, strict library (plus the lvlabel CLI) that brings together:
//		• Subsets: every subset of {1..n} as a 0/1 inclusion vector
//		• Graceful labelings: distinct labels in [0,m], distinct edge differences
//		• Wheels: graceful W_n with hub and one rim vertex pinned, mirror-reduced
//		• L(3,2,1) labelings: exhaustive up to a maximum label, or minimum span
//
// Every problem plugs into one engine (backtrack.Search) through the
// backtrack.Problem interface: a candidate generator, a safety predicate and
// a Commit/Undo pair that keeps auxiliary state exactly in step with the
// assignment vector.
//
// Packages:
//
//	core/      immutable integer-indexed Graph (adjacency in insertion order)
//	builder/   structural constructors: Wheel, Cycle, Path, Star, Complete, Grid
//	edgelist/  whitespace-separated edge-list input → core.Graph
//	bfs/       breadth-first distances (verifies L(3,2,1) separations)
//	backtrack/ Assignment, Problem, Search, solution sinks
//	subset/    subset generation
//	graceful/  graceful labelings and the wheel report
//	symmetry/  complementary-pair reduction of wheel labelings
//	l321/      L(3,2,1) enumeration, Verify and MinSpan
//	render/    bracket lists, subset braces, DOT and SVG
//	config/    TOML/YAML + LVLABEL_* environment run parameters
//
// Quick example (graceful labelings of the wheel W_4):
//
//	rep, err := graceful.Wheel(4)
//	if err != nil { ... }
//	for _, lab := range rep.Distinct {
//		fmt.Println(render.Labeling(lab))
//	}
//	fmt.Println("total =", rep.Total())
//
//	go install github.com/katalvlaran/lvlabel/cmd/lvlabel@latest
package lvlabel
