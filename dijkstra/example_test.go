// Package dijkstra_test provides runnable examples of the shortest-path engine.
package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tripplan/core"
	"github.com/katalvlaran/tripplan/dijkstra"
)

// ExampleShortestPaths plans a trip on a small road map with the default
// binary-heap strategy.
func ExampleShortestPaths() {
	// 1) Build the road map; E has no roads at all.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)
	g.AddEdge("C", "D", 1)
	g.AddVertex("E")

	// 2) One run gives distances to every vertex.
	res, err := dijkstra.ShortestPaths(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Query individual routes.
	for _, dest := range []string{"D", "E"} {
		p, _ := res.PathTo(dest)
		fmt.Println(dest+":", p)
	}
	// Output:
	// D: A -> B -> C -> D (4)
	// E: no path
}

// ExampleRun_bucketQueue selects Dial's bucket queue, which suits graphs whose
// weights are small integers.
func ExampleRun_bucketQueue() {
	g := core.NewGraph()
	g.AddEdge("Seattle", "Tacoma", 3)
	g.AddEdge("Tacoma", "Olympia", 3)
	g.AddEdge("Seattle", "Olympia", 7)

	res, err := dijkstra.Run(context.Background(), g, "Seattle", dijkstra.WithBucketQueue())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := res.Distance("Olympia")
	prev, _ := res.Predecessor("Olympia")
	fmt.Printf("%s: dist=%d via %s\n", res.Strategy(), d, prev)
	// Output: bucket-queue: dist=6 via Tacoma
}
