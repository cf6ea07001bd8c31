package maze_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/search"
)

// ExampleGenerate carves a seeded maze, roughens it with Mud and solves it.
func ExampleGenerate() {
	g, _ := grid.New(21)
	if _, err := maze.Generate(g, maze.WithSeed(2024)); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := maze.Terrain(g, maze.WithSeed(2024)); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := search.Run(g, search.Dijkstra)
	fmt.Println("regions:", len(g.Components(grid.Conn4)))
	fmt.Println("solvable:", res.Found)
	// Output:
	// regions: 1
	// solvable: true
}
