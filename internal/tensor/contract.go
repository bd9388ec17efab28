package tensor

import "fmt"

// Contract contracts contravariant slot i against covariant slot j of t,
// producing a tensor of type (p-1, q-1). This is the discrete Einstein
// summation: the two slots are identified, swept over every basis value and
// summed,
//
//	result[a', b'] = Σ_r t[insert(a', i, r), insert(b', j, r)]   r in [0, dim)
//
// The summed coordinate is reinserted at its original slot position, never
// appended: multi-index order is the tensor-product slot order, so inserting
// anywhere else would silently compute a different tensor.
//
// Failure modes, each distinct: a tensor with p < 1 or q < 1 wraps
// ErrNotContractible; i outside [0, p) or j outside [0, q) wraps
// ErrSlotRange. The result's component map is dense by construction,
// including zero sums.
func Contract[T any, R Ring[T]](t *Tensor[T, R], i, j int) (*Tensor[T, R], error) {
	p, q := t.Type()
	if p < 1 || q < 1 {
		return nil, fmt.Errorf("%w: type (%d,%d)", ErrNotContractible, p, q)
	}
	if i < 0 || i >= p {
		return nil, fmt.Errorf("%w: contravariant slot %d outside [0,%d)", ErrSlotRange, i, p)
	}
	if j < 0 || j >= q {
		return nil, fmt.Errorf("%w: covariant slot %d outside [0,%d)", ErrSlotRange, j, q)
	}

	ring := t.Ring()
	dim := t.Basis().Dim()
	values := make(map[Key]T)
	for _, a := range Generate(p-1, dim) {
		for _, b := range Generate(q-1, dim) {
			sum := ring.Zero()
			for r := 0; r < dim; r++ {
				sum = ring.Add(sum, t.component(NewKey(a.Insert(i, r), b.Insert(j, r))))
			}
			values[NewKey(a, b)] = sum
		}
	}

	return New(t.Basis(), p-1, q-1, values, ring)
}

// LowerIndex converts contravariant slot i of t into a covariant slot by
// contracting it against the metric,
//
//	result[a', append(b, m)] = Σ_r t[insert(a', i, r), b] * g[(r,m)]
//
// Convention: slot i is contracted against the metric's first covariant
// slot, and the freshly lowered index is appended as the result's last
// covariant slot. The result has type (p-1, q+1).
//
// The metric must live over the same basis as t (ErrTypeMismatch
// otherwise); a tensor with no contravariant slot wraps ErrNotContractible,
// an out-of-range slot wraps ErrSlotRange. Lowering multiplies components,
// so it is only available over a ProductRing.
func LowerIndex[T any, R ProductRing[T]](t *Tensor[T, R], g *Metric[T, R], i int) (*Tensor[T, R], error) {
	if !t.Basis().Equal(g.Basis()) {
		return nil, fmt.Errorf("%w: tensor basis %s vs metric basis %s", ErrTypeMismatch, t.Basis(), g.Basis())
	}

	p, q := t.Type()
	if p < 1 {
		return nil, fmt.Errorf("%w: type (%d,%d) has no contravariant slot to lower", ErrNotContractible, p, q)
	}
	if i < 0 || i >= p {
		return nil, fmt.Errorf("%w: contravariant slot %d outside [0,%d)", ErrSlotRange, i, p)
	}

	ring := t.Ring()
	dim := t.Basis().Dim()
	gt := g.Tensor()
	values := make(map[Key]T)
	for _, a := range Generate(p-1, dim) {
		for _, b := range Generate(q, dim) {
			for m := 0; m < dim; m++ {
				sum := ring.Zero()
				for r := 0; r < dim; r++ {
					sum = ring.Add(sum, ring.Mul(
						t.component(NewKey(a.Insert(i, r), b)),
						gt.component(NewKey(nil, MultiIndex{r, m})),
					))
				}
				values[NewKey(a, b.Insert(len(b), m))] = sum
			}
		}
	}

	return New(t.Basis(), p-1, q+1, values, ring)
}
