package tensor

// Ring defines the scalar arithmetic a tensor needs. Implementations supply
// the element operations; the tensor machinery never inspects scalar values
// beyond these methods, so numeric and symbolic backends are interchangeable.
//
// Implementations:
//   - ring/real: float64 arithmetic
//   - symbolic: exact symbolic expressions
//
// Example:
//
//	ring := real.New()
//	t, err := tensor.New(basis, 1, 1, components, ring)
//	sum, err := t.Add(t) // Uses ring.Add per component.
type Ring[T any] interface {
	// Add returns the ring sum x + y.
	Add(x, y T) T

	// Zero returns the additive identity. Absent sparse entries read as Zero.
	Zero() T

	// Equal reports whether two scalars are equal ring elements.
	Equal(x, y T) bool
}

// ProductRing extends Ring with multiplication. Operations that scale
// components against a metric (index lowering) require it; plain storage,
// addition and contraction do not.
type ProductRing[T any] interface {
	Ring[T]

	// Mul returns the ring product x * y.
	Mul(x, y T) T
}
