package simgraph_test

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/hupe1980/simgraph"
	"github.com/hupe1980/simgraph/dataset"
	"github.com/hupe1980/simgraph/distance"
	"github.com/hupe1980/simgraph/neighborhood"
)

func ExampleBuild() {
	ds := dataset.Slice{{0}, {1}, {2}, {3}, {10}}

	knn, err := neighborhood.NewKNN(2, ds)
	if err != nil {
		log.Fatal(err)
	}

	g, err := simgraph.Build[float64](context.Background(), knn, simgraph.InverseDistance[float64](distance.Euclidean), ds)
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range g.Edges(4) {
		fmt.Printf("4 -> %d (%.4f)\n", e.To, e.Weight)
	}
	// Output:
	// 4 -> 3 (0.1429)
	// 4 -> 2 (0.1250)
}

func ExampleLocalScale() {
	ds := dataset.Slice{{0}, {1}, {2}, {3}, {10}}

	scale, err := simgraph.LocalScale(context.Background(), neighborhood.Clique{}, simgraph.PairwiseDistance(distance.Euclidean), ds, simgraph.WithK(2))
	if err != nil {
		log.Fatal(err)
	}

	// Round for display; the float32 distance kernels are not bit-exact.
	_, cols := scale.Dims()
	for j := 0; j < cols; j++ {
		fmt.Printf("%.0f ", scale.At(0, j))
	}
	fmt.Println()
	// Output:
	// 2 1 1 2 8
}

func ExampleRandomKGraph() {
	cfg := simgraph.RandomKGraphConfig{NumVertices: 6, K: 2}

	g, err := simgraph.RandomKGraph(context.Background(), cfg, simgraph.WithRandSource(rand.NewSource(1)))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(g.Order(), g.Degree(0))
	// Output:
	// 6 2
}
