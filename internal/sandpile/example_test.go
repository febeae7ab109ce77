package sandpile_test

import (
	"fmt"

	"sandpiles/internal/sandpile"
)

// Sixteen grains dropped on a single pile spread into the familiar diamond.
func ExampleGrid_AddGrains() {
	g, _ := sandpile.New(sandpile.Square(0), sandpile.Expanding)
	_ = g.AddGrains(16, 0, 0)
	for _, row := range g.ToArray() {
		fmt.Println(row)
	}
	fmt.Println("bounds:", g.Bounds())
	// Output:
	// [0 0 1 0 0]
	// [0 2 1 2 0]
	// [1 1 0 1 1]
	// [0 2 1 2 0]
	// [0 0 1 0 0]
	// bounds: {-2 2 -2 2}
}

// A budgeted topple leaves work queued for the next call.
func ExampleGrid_Topple() {
	g, _ := sandpile.New(sandpile.Square(0), sandpile.Expanding)
	_ = g.Drop(64, 0, 0)
	fmt.Println(g.Topple(1), len(g.Pending()))
	fmt.Println(g.Topple(sandpile.Unbounded), g.Total())
	// Output:
	// false 4
	// true 64
}
