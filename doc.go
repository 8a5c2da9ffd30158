// Package mazerun provides an oriented-grid shortest-path search engine.
//
// The agent occupies a cell and faces one of four cardinal directions.
// Stepping forward costs 1 and rotating by 90 degrees costs 1000, so the
// search runs over (cell, orientation) states rather than cells alone.
//
// It exposes three main entry points:
//
//   - MinimumCost: run Dijkstra to the first goal pop and get a Result.
//   - OptimalCells: keep every tied predecessor and get the set of cells
//     lying on any minimum-cost path.
//   - Stepper: iterate the all-paths search one expansion at a time to drive
//     UIs or debugging tools.
//
// SolveBatch runs independent searches over many grids on a worker pool.
package mazerun
