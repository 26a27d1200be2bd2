// Package distance provides vector distance calculations with SIMD
// acceleration via the vek library.
//
// # Supported Metrics
//
//   - MetricEuclidean: Euclidean (L2) distance (default for local scale)
//   - MetricSquaredL2: Squared Euclidean distance (default for spatial indexes)
//   - MetricCosine: Cosine distance (1 - cosine similarity)
//   - MetricDot: Dot product (negated by Provider so smaller means closer)
//
// # Usage
//
//	dist := distance.Euclidean(a, b)
//	fn, err := distance.Provider(distance.MetricSquaredL2)
package distance
