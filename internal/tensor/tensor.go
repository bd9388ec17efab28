package tensor

import (
	"fmt"
	"sort"
	"strings"
)

// Tensor is a sparse (p,q)-tensor over a fixed basis, generic over its
// scalar type T and the ring R supplying scalar arithmetic.
//
// Components are held in a map keyed by (contravariant, covariant)
// multi-index pairs; pairs absent from the map read as the ring zero. A
// Tensor is immutable: every operation returns a new value and never touches
// the receiver, so tensors are safe to share across goroutines.
//
// Example:
//
//	ring := real.New()
//	basis := tensor.Basis{"e0", "e1"}
//	t, err := tensor.New(basis, 1, 1, map[tensor.Key]float64{
//	    tensor.NewKey(tensor.MultiIndex{0}, tensor.MultiIndex{0}): 3,
//	    tensor.NewKey(tensor.MultiIndex{1}, tensor.MultiIndex{1}): 5,
//	}, ring)
type Tensor[T any, R Ring[T]] struct {
	basis  Basis
	contra int
	cova   int
	values map[Key]T
	ring   R
}

// New constructs a (contra, cova)-tensor over basis from a sparse component
// map. Every key is validated against the declared type and basis dimension
// before anything is stored; an invalid key fails the whole construction
// with an error wrapping ErrInvalidMultiIndex, and no tensor is returned.
//
// The component map is copied; the caller keeps ownership of its argument.
// A nil map is a zero tensor.
func New[T any, R Ring[T]](basis Basis, contra, cova int, components map[Key]T, ring R) (*Tensor[T, R], error) {
	if contra < 0 || cova < 0 {
		return nil, fmt.Errorf("%w: negative rank in type (%d,%d)", ErrInvalidMultiIndex, contra, cova)
	}

	dim := basis.Dim()
	for k := range components {
		if !k.Contra().Valid(dim, contra) {
			return nil, fmt.Errorf("%w: contravariant %s does not fit dimension %d over a %d-dim basis",
				ErrInvalidMultiIndex, k.Contra(), contra, dim)
		}
		if !k.Cova().Valid(dim, cova) {
			return nil, fmt.Errorf("%w: covariant %s does not fit dimension %d over a %d-dim basis",
				ErrInvalidMultiIndex, k.Cova(), cova, dim)
		}
	}

	values := make(map[Key]T, len(components))
	for k, v := range components {
		values[k] = v
	}

	return &Tensor[T, R]{
		basis:  basis,
		contra: contra,
		cova:   cova,
		values: values,
		ring:   ring,
	}, nil
}

// Basis returns the tensor's basis. Callers must treat it as read-only.
func (t *Tensor[T, R]) Basis() Basis { return t.basis }

// Type returns the tensor's (contravariant, covariant) rank pair.
func (t *Tensor[T, R]) Type() (contra, cova int) { return t.contra, t.cova }

// Ring returns the scalar ring the tensor computes with.
func (t *Tensor[T, R]) Ring() R { return t.ring }

// NumStored returns the number of explicitly stored components.
func (t *Tensor[T, R]) NumStored() int { return len(t.values) }

// component is the single lookup primitive: a stored value, or the ring
// zero when the key is absent. At and Densify both read through it.
func (t *Tensor[T, R]) component(k Key) T {
	if v, ok := t.values[k]; ok {
		return v
	}
	return t.ring.Zero()
}

// At returns the component addressed by the index pair (a, b). Each side
// accepts a bare int (shorthand for a singleton multi-index), a MultiIndex
// or []int, or nil (the empty marker), in any combination.
//
// A valid pair with no stored component returns the ring zero. A pair that
// does not fit the tensor's type or basis dimension is an error wrapping
// ErrBadIndexPair; invalid shape is never silently read as zero.
func (t *Tensor[T, R]) At(a, b any) (T, error) {
	var zero T

	ma, ok := normalize(a)
	if !ok {
		return zero, fmt.Errorf("%w: unsupported contravariant index %v (%T)", ErrBadIndexPair, a, a)
	}
	mb, ok := normalize(b)
	if !ok {
		return zero, fmt.Errorf("%w: unsupported covariant index %v (%T)", ErrBadIndexPair, b, b)
	}
	return t.AtIndex(ma, mb)
}

// AtIndex is At for callers that already hold canonical multi-indices.
func (t *Tensor[T, R]) AtIndex(a, b MultiIndex) (T, error) {
	var zero T

	dim := t.basis.Dim()
	if !a.Valid(dim, t.contra) || !b.Valid(dim, t.cova) {
		return zero, fmt.Errorf("%w: %s and %s against type (%d,%d) over a %d-dim basis",
			ErrBadIndexPair, a, b, t.contra, t.cova, dim)
	}
	return t.component(NewKey(a, b)), nil
}

// Add returns the pointwise sum of two tensors. Both operands must share
// the same basis (by value) and the same (p,q) type; otherwise the result
// is an error wrapping ErrTypeMismatch. Neither operand is modified.
func (t *Tensor[T, R]) Add(other *Tensor[T, R]) (*Tensor[T, R], error) {
	if !t.basis.Equal(other.basis) || t.contra != other.contra || t.cova != other.cova {
		return nil, fmt.Errorf("%w: (%d,%d) over %s vs (%d,%d) over %s",
			ErrTypeMismatch, t.contra, t.cova, t.basis, other.contra, other.cova, other.basis)
	}

	values := make(map[Key]T, len(t.values)+len(other.values))
	for k, v := range t.values {
		values[k] = v
	}
	for k, v := range other.values {
		if existing, ok := values[k]; ok {
			values[k] = t.ring.Add(existing, v)
		} else {
			values[k] = v
		}
	}

	return &Tensor[T, R]{
		basis:  t.basis,
		contra: t.contra,
		cova:   t.cova,
		values: values,
		ring:   t.ring,
	}, nil
}

// Map returns a new tensor whose components are f applied to every stored
// component. The receiver is untouched. Typical use is scalar substitution
// over a symbolic ring:
//
//	evaluated := t.Map(func(e *symbolic.Expr) *symbolic.Expr {
//	    return e.Subs(bindings)
//	})
func (t *Tensor[T, R]) Map(f func(T) T) *Tensor[T, R] {
	values := make(map[Key]T, len(t.values))
	for k, v := range t.values {
		values[k] = f(v)
	}
	return &Tensor[T, R]{
		basis:  t.basis,
		contra: t.contra,
		cova:   t.cova,
		values: values,
		ring:   t.ring,
	}
}

// Densify materializes the full dense component table: every valid
// (contravariant, covariant) multi-index pair for the tensor's type, with
// the ring zero filled in for absent entries. The table has
// dim^p * dim^q entries (one entry when p = q = 0).
func (t *Tensor[T, R]) Densify() map[Key]T {
	dim := t.basis.Dim()
	contras := Generate(t.contra, dim)
	covas := Generate(t.cova, dim)

	dense := make(map[Key]T, len(contras)*len(covas))
	for _, a := range contras {
		for _, b := range covas {
			k := NewKey(a, b)
			dense[k] = t.component(k)
		}
	}
	return dense
}

// Equal reports structural equality: same basis by value, same (p,q) type,
// and identical densified components under ring equality. Two tensors with
// different sparse representations (explicit zeros, different key order)
// but the same dense values are equal.
//
// The comparison densifies both sides, costing O(dim^(p+q)). That is
// deliberate: correctness over cleverness at the dimensions this package
// targets.
func (t *Tensor[T, R]) Equal(other *Tensor[T, R]) bool {
	if !t.basis.Equal(other.basis) || t.contra != other.contra || t.cova != other.cova {
		return false
	}

	dense := t.Densify()
	otherDense := other.Densify()
	for k, v := range dense {
		if !t.ring.Equal(v, otherDense[k]) {
			return false
		}
	}
	return true
}

// sortedKeys returns the stored keys ordered by contravariant then
// covariant multi-index, for deterministic rendering.
func (t *Tensor[T, R]) sortedKeys() []Key {
	keys := make([]Key, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].compare(keys[j]) < 0 })
	return keys
}

// String renders the tensor as a sum of basis terms, one per stored
// non-zero component, e.g. "(3) e0* ⊗ e0 + (5) e1* ⊗ e1". Contravariant
// slots carry a trailing *. Terms are sorted by multi-index, so the output
// is deterministic. A tensor with no non-zero component renders as "0".
func (t *Tensor[T, R]) String() string {
	var terms []string
	for _, k := range t.sortedKeys() {
		v := t.values[k]
		if t.ring.Equal(v, t.ring.Zero()) {
			continue
		}

		var factors []string
		for _, i := range k.Contra() {
			factors = append(factors, t.basis[i]+"*")
		}
		for _, i := range k.Cova() {
			factors = append(factors, t.basis[i])
		}

		term := fmt.Sprintf("(%v)", v)
		if len(factors) > 0 {
			term += " " + strings.Join(factors, " ⊗ ")
		}
		terms = append(terms, term)
	}

	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
