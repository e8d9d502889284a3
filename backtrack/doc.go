// Package backtrack is the generic depth-first search engine shared by every
// labeling problem in lvlabel.
//
// What
//
//   - A Problem owns an assignment vector (one slot per position, Unset
//     until committed) plus whatever auxiliary state its safety predicate
//     needs (used labels, used edge differences, ...).
//   - Search fills slots in increasing index order. For each slot it asks
//     the Problem for candidates (in the Problem's order), filters them
//     through Safe, then Commit → recurse → Undo.
//   - When every slot is filled the current assignment is passed to the Sink.
//
// Discipline
//
//   - Every Commit is paired with exactly one Undo, on every exit path,
//     including the early exit after a stop signal. When Search returns the
//     Problem is back in the state it was in before Search was called.
//   - The Sink receives a read-only view that is only valid during the call;
//     use Collect (which clones) to keep solutions.
//
// Modes
//
//	CollectAll   explore the whole tree (default).
//	StopAtFirst  unwind as soon as one solution has been sunk; every frame
//	             observes the stop and abandons its candidate loop.
//	WithLimit(k) generalizes StopAtFirst to k solutions.
//	WithContext  polls ctx every CheckEvery nodes and unwinds once it is done.
//
// Outcome
//
//	Exhausted  the tree was fully explored (possibly with zero solutions;
//	           "no labeling within this bound" is a normal outcome).
//	Stopped    the solution limit was reached.
//	Cancelled  the context was done; Search also returns its error.
//
// Complexity
//
//	Exponential in the number of slots in the worst case; recursion depth
//	equals the number of free slots. Each frame holds one candidate buffer
//	that is reused across calls.
package backtrack
