// Copyright 2025 Ricci ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/ricci-ml/ricci/internal/tensor"
)

// Type aliases for public API

// Basis is the fixed ordered sequence of symbolic basis vectors/covectors.
type Basis = tensor.Basis

// MultiIndex is an ordered tuple of basis-component indices. A nil
// MultiIndex is the empty marker used when a dimension is zero.
type MultiIndex = tensor.MultiIndex

// Key identifies one tensor component: a comparable (contravariant,
// covariant) multi-index pair. Build Keys with NewKey.
type Key = tensor.Key

// Ring supplies the scalar arithmetic a tensor computes with.
// Implementations: ring/real (float64), symbolic (exact expressions).
type Ring[T any] = tensor.Ring[T]

// ProductRing extends Ring with multiplication, required by LowerIndex.
type ProductRing[T any] = tensor.ProductRing[T]

// Tensor is a sparse (p,q)-tensor over a fixed basis.
//
// T is the scalar type; R is the ring supplying its arithmetic. Tensors are
// immutable: every operation returns a new value.
//
// Example:
//
//	ring := real.New()
//	t, err := tensor.New(basis, 1, 1, components, ring)
//	sum, err := t.Add(t)
type Tensor[T any, R Ring[T]] = tensor.Tensor[T, R]

// Metric bundles a square matrix with its (0,2)-tensor form over a basis.
type Metric[T any, R Ring[T]] = tensor.Metric[T, R]

// Contract-violation errors, matchable with errors.Is.
var (
	ErrInvalidMultiIndex = tensor.ErrInvalidMultiIndex
	ErrBadIndexPair      = tensor.ErrBadIndexPair
	ErrTypeMismatch      = tensor.ErrTypeMismatch
	ErrNotContractible   = tensor.ErrNotContractible
	ErrSlotRange         = tensor.ErrSlotRange
	ErrBadMatrix         = tensor.ErrBadMatrix
)

// New constructs a (contra, cova)-tensor over basis from a sparse component
// map. Every key is validated before anything is stored; an invalid key
// fails the whole construction with an error wrapping ErrInvalidMultiIndex.
func New[T any, R Ring[T]](basis Basis, contra, cova int, components map[Key]T, ring R) (*Tensor[T, R], error) {
	return tensor.New(basis, contra, cova, components, ring)
}

// NewKey builds the component key for contravariant multi-index a and
// covariant multi-index b. Either side may be the empty marker (nil).
func NewKey(a, b MultiIndex) Key {
	return tensor.NewKey(a, b)
}

// Generate returns every length-p multi-index with entries in [0, n), in
// odometer order. For p == 0 it returns only the empty marker.
func Generate(p, n int) []MultiIndex {
	return tensor.Generate(p, n)
}

// Contract contracts contravariant slot i against covariant slot j,
// producing a tensor of type (p-1, q-1) by summing the identified slots
// over every basis value.
//
// Example:
//
//	trace, err := tensor.Contract(t, 0, 0) // (1,1)-tensor → its trace
func Contract[T any, R Ring[T]](t *Tensor[T, R], i, j int) (*Tensor[T, R], error) {
	return tensor.Contract(t, i, j)
}

// LowerIndex converts contravariant slot i of t into a covariant slot by
// contracting it against the metric's first covariant slot; the lowered
// index becomes the result's last covariant slot. Requires a ProductRing.
func LowerIndex[T any, R ProductRing[T]](t *Tensor[T, R], g *Metric[T, R], i int) (*Tensor[T, R], error) {
	return tensor.LowerIndex(t, g, i)
}

// FromMatrix imports a square matrix as a (0,2)-tensor: component (i,j) is
// m[i][j], with the empty marker on the contravariant side.
func FromMatrix[T any, R Ring[T]](m [][]T, basis Basis, ring R) (*Tensor[T, R], error) {
	return tensor.FromMatrix(m, basis, ring)
}

// NewMetric builds a Metric from a square matrix over the given basis.
func NewMetric[T any, R Ring[T]](m [][]T, basis Basis, ring R) (*Metric[T, R], error) {
	return tensor.NewMetric(m, basis, ring)
}
