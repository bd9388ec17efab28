package tensor

import "fmt"

// FromMatrix imports a square matrix as a (0,2)-tensor: component (i,j) of
// the result is m[i][j], with the empty marker on the contravariant side.
// The matrix must be dim×dim for the given basis; anything else wraps
// ErrBadMatrix.
func FromMatrix[T any, R Ring[T]](m [][]T, basis Basis, ring R) (*Tensor[T, R], error) {
	dim := basis.Dim()
	if len(m) != dim {
		return nil, fmt.Errorf("%w: %d rows for a %d-dim basis", ErrBadMatrix, len(m), dim)
	}

	values := make(map[Key]T, dim*dim)
	for i, row := range m {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadMatrix, i, len(row), dim)
		}
		for j, v := range row {
			values[NewKey(nil, MultiIndex{i, j})] = v
		}
	}

	return New(basis, 0, 2, values, ring)
}

// Metric bundles a square matrix with its (0,2)-tensor form over a basis.
type Metric[T any, R Ring[T]] struct {
	matrix [][]T
	basis  Basis
	tensor *Tensor[T, R]
}

// NewMetric builds a Metric from a square matrix over the given basis.
func NewMetric[T any, R Ring[T]](m [][]T, basis Basis, ring R) (*Metric[T, R], error) {
	t, err := FromMatrix(m, basis, ring)
	if err != nil {
		return nil, err
	}

	rows := make([][]T, len(m))
	for i, row := range m {
		rows[i] = make([]T, len(row))
		copy(rows[i], row)
	}

	return &Metric[T, R]{matrix: rows, basis: basis, tensor: t}, nil
}

// Basis returns the metric's basis.
func (g *Metric[T, R]) Basis() Basis { return g.basis }

// At returns matrix entry (i, j). It panics on out-of-range indices, like a
// slice access.
func (g *Metric[T, R]) At(i, j int) T { return g.matrix[i][j] }

// Tensor returns the metric's (0,2)-tensor form.
func (g *Metric[T, R]) Tensor() *Tensor[T, R] { return g.tensor }

// String renders the metric's tensor form.
func (g *Metric[T, R]) String() string { return g.tensor.String() }
