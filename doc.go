// Package cubik provides a generalized NxNxN twisty-puzzle state engine.
//
// The engine represents a cube as six NxN face grids of color tokens,
// applies outer-face turns, inner-slice turns and whole-cube rotations
// as simultaneous permutations across the grids, tracks a linear move
// history with undo/redo, and detects the solved condition. One engine
// serves every cube size: adjacency between faces is described as
// parameterized boundary rules, not per-size tables.
//
// # Quick Start
//
//	cube, err := cubik.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(cubik.R, cubik.U, cubik.RPrime, cubik.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Notifications
//
// Register callbacks to follow the engine from a UI or renderer:
//
//	cube.OnMove(func(m cubik.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
//
//	cube.OnSolveComplete(func() {
//	    fmt.Println("Solved!")
//	})
//
// # Bigger Cubes
//
// Any size from 2 up is supported. Inner layers turn with RotateSlice
// or depth-prefixed notation:
//
//	cube, _ := cubik.New(4)
//	cube.ApplyNotation("2R U' 3F")      // slice turns
//	cube.RotateSlice(cubik.AxisY, 2, cubik.TurnCW)
//
// # Scramble, Undo, Solve
//
//	cube.Scramble(25)
//	cube.Undo()
//	cube.Redo()
//	cube.Solve() // rewinds the recorded history
//
// # Persistence
//
// Snapshot and Restore round-trip the full state, including the
// orientation map, through a versioned JSON-friendly document:
//
//	snap := cube.Snapshot()
//	restored, err := cubik.FromSnapshot(snap)
package cubik
