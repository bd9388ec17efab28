// Copyright 2025 Ricci ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for sparse symbolic tensor algebra.
//
// # Overview
//
// A Tensor[T, R] is a sparse (p,q)-tensor over a fixed basis, generic over
// its scalar type T and the ring R supplying scalar arithmetic. This package
// provides:
//   - Sparse component storage with implicit zero-fill
//   - Component lookup, pointwise addition, structural equality
//   - Densification to the full dim^p * dim^q component table
//   - Index contraction (discrete Einstein summation) and index lowering
//   - A matrix import adapter and a Metric wrapper
//
// # Basic Usage
//
//	import (
//	    "github.com/ricci-ml/ricci/ring/real"
//	    "github.com/ricci-ml/ricci/tensor"
//	)
//
//	func main() {
//	    ring := real.New()
//	    basis := tensor.Basis{"e0", "e1"}
//
//	    t, _ := tensor.New(basis, 1, 1, map[tensor.Key]float64{
//	        tensor.NewKey(tensor.MultiIndex{0}, tensor.MultiIndex{0}): 3,
//	        tensor.NewKey(tensor.MultiIndex{1}, tensor.MultiIndex{1}): 5,
//	    }, ring)
//
//	    trace, _ := tensor.Contract(t, 0, 0) // (0,0)-tensor holding 8
//	    v, _ := trace.At(nil, nil)
//	}
//
// # Scalar Rings
//
// Scalars are abstract ring elements; swap the backend freely:
//   - ring/real: float64 arithmetic
//   - symbolic: exact symbolic expressions (general relativity workloads)
//
// # Immutability
//
// Tensors are immutable; every operation returns a new value. Sharing
// tensors and bases across goroutines is safe by construction.
package tensor
