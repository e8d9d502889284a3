// Package graceful searches for graceful labelings.
//
// A graceful labeling of a graph with m edges assigns pairwise distinct
// labels from {0..m} to the vertices so that the induced edge labels
// |label(u) − label(v)| are exactly {1..m}, each used once.
//
// Search state
//
//   - one slot per vertex, candidates 0..m in ascending order;
//   - a used-label table (labels are distinct);
//   - an ordered set of realized edge differences, covering exactly the
//     edges whose endpoints are both labeled.
//
// A candidate l is safe at vertex v when l is unused and, for every labeled
// neighbor u, |l − label(u)| is neither already realized nor repeated by
// another labeled neighbor of v in the same step. Commit records the exact
// differences it inserted for v; Undo erases exactly those, never
// recomputing them.
//
// Wheel graphs
//
// Wheel(n) specializes the search to W_n: the hub is fixed to 0 and rim
// vertex 1 to 2n (so difference 2n is realized up front), the search starts
// at slot 2, and mirror-complementary labelings are removed afterwards with
// symmetry.Reduce.
package graceful
