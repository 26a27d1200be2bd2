package neighborhood

import "github.com/hupe1980/simgraph/dataset"

// Compile-time check.
var _ Strategy = Clique{}

// Clique connects every vertex to every other vertex. O(n) per query, O(n²)
// edges in total — intended for small datasets only.
type Clique struct{}

// Neighbors implements Strategy.
func (Clique) Neighbors(j int, ds dataset.Dataset) ([]int, error) {
	if err := checkVertex(j, ds); err != nil {
		return nil, err
	}

	n := ds.Len()
	out := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != j {
			out = append(out, i)
		}
	}
	return out, nil
}
