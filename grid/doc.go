// Package grid models the rectangular board that every search and maze
// generator in gridpath operates on.
//
// What:
//
//   - Grid holds Rows×Cols cells in row-major order, with exactly one start
//     and one finish cell and a mutable wall flag per cell.
//   - Coord addresses a cell; Index/Coordinate map it to and from row-major order.
//   - Offsets fixes the orthogonal neighbor order (up, down, left, right) so
//     that every algorithm breaks ties the same way.
//   - Components groups open cells into 4-connected regions.
//   - Parse/Lines convert a grid to and from a compact text board.
//
// Why:
//
//   - Keep the static board (walls, start, finish) apart from per-search
//     working state, which lives in the search package.
//   - Generators return modified clones, so callers can keep the original.
//
// Complexity:
//
//   - New, Clone, ClearWalls, Parse, Lines: O(R×C) time and memory.
//   - Components: O(R×C) time, O(R×C) memory.
//   - Cell, SetWall, InBounds, Index: O(1).
//
// Text format:
//
//	S...#
//	.##.#
//	....F
//
// '.' open, '#' wall, 'S' start, 'F' finish. Every row must have the same length.
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrNonRectangular: text rows of differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrStartIsFinish: start and finish address the same cell.
//   - ErrProtectedCell: attempt to turn start or finish into a wall.
//   - ErrBadSymbol, ErrMissingStart, ErrMissingFinish, ErrDuplicateRole: text parsing.
package grid
