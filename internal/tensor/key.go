package tensor

// Key identifies one component of a tensor: a (contravariant, covariant)
// multi-index pair in a comparable form usable as a map key. Build Keys with
// NewKey only; the zero Key is the (empty marker, empty marker) pair of a
// (0,0)-tensor.
type Key struct {
	contra string
	cova   string
}

// NewKey builds the component key for contravariant multi-index a and
// covariant multi-index b. Either side may be the empty marker (nil).
func NewKey(a, b MultiIndex) Key {
	return Key{contra: a.encode(), cova: b.encode()}
}

// Contra returns the contravariant half of the key.
func (k Key) Contra() MultiIndex { return decode(k.contra) }

// Cova returns the covariant half of the key.
func (k Key) Cova() MultiIndex { return decode(k.cova) }

// String renders the key as "((a),(b))", e.g. "((0,1),(2))".
func (k Key) String() string {
	return "(" + k.Contra().String() + "," + k.Cova().String() + ")"
}

// compare orders keys by contravariant then covariant multi-index.
func (k Key) compare(other Key) int {
	if c := k.Contra().Compare(other.Contra()); c != 0 {
		return c
	}
	return k.Cova().Compare(other.Cova())
}
