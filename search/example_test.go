package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rivercross/river"
	"github.com/katalvlaran/rivercross/search"
)

// ExampleSolve runs the classic three-and-three puzzle and prints every
// crossing on the first path found.
func ExampleSolve() {
	res, err := search.Solve(context.Background(), 3, 3, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, "after", res.Iterations, "iterations")
	for i := 1; i < len(res.Path); i++ {
		load, _ := river.LoadBetween(res.Path[i-1], res.Path[i])
		fmt.Printf("%-5s %s\n", load, res.Path[i])
	}
	// Output:
	// solved after 23 iterations
	// 2C    {C:1 M:3 | C:2 M:0 boat=right}
	// 1C    {C:2 M:3 | C:1 M:0 boat=left}
	// 2C    {C:0 M:3 | C:3 M:0 boat=right}
	// 1C    {C:1 M:3 | C:2 M:0 boat=left}
	// 2M    {C:1 M:1 | C:2 M:2 boat=right}
	// 1C+1M {C:2 M:2 | C:1 M:1 boat=left}
	// 2M    {C:2 M:0 | C:1 M:3 boat=right}
	// 1C    {C:3 M:0 | C:0 M:3 boat=left}
	// 2C    {C:1 M:0 | C:2 M:3 boat=right}
	// 1C    {C:2 M:0 | C:1 M:3 boat=left}
	// 2C    {C:0 M:0 | C:3 M:3 boat=right}
}

// ExampleEngine_Step drives a capped search by hand and inspects the
// frontier after each expansion.
func ExampleEngine_Step() {
	initial, _ := river.Initial(3, 3)
	e := search.NewEngine()
	if err := e.StartSearch(initial, 3); err != nil {
		fmt.Println("error:", err)
		return
	}
	for done := false; !done; {
		var err error
		if done, err = e.Step(); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(e.Iterations(), len(e.CurrentFrontier()))
	}
	fmt.Println(e.Status())
	// Output:
	// 1 5
	// 2 4
	// 3 4
	// exhausted
}
