package tensor

import "strings"

// Basis is the fixed ordered sequence of symbolic basis vectors/covectors
// spanning the space. Its length is the dimension of every multi-index entry
// range. A Basis is shared read-only between tensors and must not be mutated
// once a tensor is built on it.
type Basis []string

// Dim returns the basis size.
func (b Basis) Dim() int { return len(b) }

// Equal compares two bases by value, respecting order.
func (b Basis) Equal(other Basis) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the basis as "[dt dr dθ dφ]".
func (b Basis) String() string {
	return "[" + strings.Join(b, " ") + "]"
}
