// Package maze synthesizes wall layouts on a grid.Grid.
//
// What:
//
//   - Random: every cell except start and finish becomes a wall with a fixed
//     probability. Existing walls are kept. No solvability guarantee.
//   - RecursiveDivision: clears the board, walls the border, then splits the
//     open interior with full-length walls that each leave one passage.
//     The open cells always form a single connected region holding start
//     and finish.
//   - Pattern: clears the board and walls every Period-th column except on
//     every Period-th row, keeping a square of radius Proximity around start
//     and finish open.
//
// Every generator returns a new grid and leaves its input untouched. Start
// and finish are never walls in the output.
//
// Determinism:
//
//	Randomness comes from a *rand.Rand built from Options.Seed (seed 0 maps to
//	a fixed default) or supplied with WithRand. The same seed and input always
//	yield the same maze.
//
// Recursive division layout:
//
//	Dividing walls sit on even rows/columns and passages on odd ones, so a
//	wall drawn later can never plug a passage left by an earlier one. A start
//	or finish cell that lands on a wall line or on the border is joined to
//	the nearest odd-row, odd-column cell by opening the cells between them.
//	Boards with fewer than 3 rows or columns have no interior and come back
//	without walls.
//
// Complexity (N = rows × cols):
//
//   - Random, Pattern: O(N).
//   - RecursiveDivision: O(N) cells written, O(log N) recursion depth on average.
//
// Errors:
//
//   - ErrNilGrid: nil input grid.
//   - ErrOutOfBounds: start or finish outside the grid.
//   - ErrOptionViolation: invalid option value.
//   - ErrUnknownGenerator: name not recognized by ParseGenerator/Generate.
package maze
