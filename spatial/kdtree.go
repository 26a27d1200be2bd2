package spatial

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// Compile-time checks for the gonum kdtree plumbing.
var (
	_ Index             = (*KDTree)(nil)
	_ kdtree.Interface  = kdPoints(nil)
	_ kdtree.Comparable = kdPoint{}
	_ kdtree.SortSlicer = kdPlane{}
)

// KDTree is an exact nearest-neighbor index backed by a gonum k-d tree.
// Build cost is O(n log n); query cost is O(log n) on average. Distances are
// squared Euclidean. Immutable after construction.
type KDTree struct {
	tree *kdtree.Tree
	dim  int
	n    int
}

// NewKDTree builds a k-d tree over points.
func NewKDTree(points [][]float32) (*KDTree, error) {
	if len(points) == 0 {
		return nil, ErrEmptyIndex
	}

	dim := len(points[0])
	data := make(kdPoints, len(points))
	for i, p := range points {
		if len(p) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
		data[i] = kdPoint{Point: toPoint(p), id: i}
	}

	return &KDTree{tree: kdtree.New(data, false), dim: dim, n: len(points)}, nil
}

// Len returns the number of indexed points.
func (t *KDTree) Len() int { return t.n }

// Nearest implements Index.
func (t *KDTree) Nearest(q []float32, k int) ([]Result, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(q) != t.dim {
		return nil, &ErrDimensionMismatch{Expected: t.dim, Actual: len(q)}
	}

	if k > t.n {
		k = t.n
	}

	keep := kdtree.NewNKeeper(k)
	t.tree.NearestSet(keep, kdPoint{Point: toPoint(q), id: -1})

	results := make([]Result, 0, k)
	for _, cd := range keep.Heap {
		if cd.Comparable == nil || math.IsInf(cd.Dist, 1) {
			continue
		}
		results = append(results, Result{
			ID:       cd.Comparable.(kdPoint).id,
			Distance: float32(cd.Dist),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].ID < results[j].ID
	})

	return results, nil
}

func toPoint(p []float32) kdtree.Point {
	out := make(kdtree.Point, len(p))
	for i, v := range p {
		out[i] = float64(v)
	}
	return out
}

// kdPoint attaches the build-order ID to a kdtree point. The methods unwrap
// the embedded point manually because kdtree.Point's own implementations
// type-assert their argument to kdtree.Point.
type kdPoint struct {
	kdtree.Point
	id int
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	return p.Point[d] - q.Point[d]
}

func (p kdPoint) Dims() int { return len(p.Point) }

func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	return p.Point.Distance(q.Point)
}

// kdPoints implements kdtree.Interface, mirroring gonum's kdtree.Points.
type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p kdPoints) Len() int                              { return len(p) }
func (p kdPoints) Pivot(d kdtree.Dim) int                { return kdPlane{kdPoints: p, Dim: d}.Pivot() }
func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// kdPlane implements kdtree.SortSlicer over a single splitting dimension.
type kdPlane struct {
	kdPoints
	kdtree.Dim
}

func (p kdPlane) Less(i, j int) bool {
	return p.kdPoints[i].Point[p.Dim] < p.kdPoints[j].Point[p.Dim]
}

func (p kdPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdPoints = p.kdPoints[start:end]
	return p
}

func (p kdPlane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}
