// Package gridpath is a path-finding playground for rectangular grids:
// build a board, carve a maze into it, and watch five classic searches
// explore it cell by cell.
//
// What is inside?
//
//	grid/           coordinates, cells, walls, text boards, open-region analysis
//	search/         Dijkstra, A*, BFS, DFS and Greedy Best-First over one engine,
//	                  plus Neighbors and ReconstructPath
//	maze/           uniform-random, recursive-division and patterned generators
//	config/         .env and environment settings
//	server/         JSON API (gin) for searches and generators
//	cmd/gridsearch/ terminal runner and server entry point
//
// Every search returns the order in which cells were finalized, so a
// presentation layer can replay the exploration, and the predecessor table
// from which the path is rebuilt.
//
// Quick ASCII example:
//
//	S . # .
//	. . # .
//	. . . F
//
// A* walks down the left column and along the bottom row: 5 steps.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
