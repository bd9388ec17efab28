// Package tensor implements sparse (p,q)-tensors over a fixed symbolic basis.
//
// A tensor of type (p, q) holds p contravariant and q covariant slots. Its
// components are stored sparsely: a map from pairs of multi-indices to scalar
// values, with absent pairs denoting scalar zero. Scalars are abstracted as
// elements of a commutative ring (see Ring), so the same tensor machinery
// works over float64, exact rationals, or symbolic expressions.
//
// The package provides the operations needed for basic differential-geometry
// computations: component lookup with implicit zero-fill, pointwise addition,
// densification, index contraction (discrete Einstein summation over one
// contravariant/covariant slot pair), and index lowering against a metric.
package tensor
