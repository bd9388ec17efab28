package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// MultiIndex is an ordered tuple of basis-component indices identifying one
// tensor-product slot combination. A nil MultiIndex is the empty marker: the
// only valid multi-index when the corresponding dimension is zero.
//
// Multi-indices are not sets. Order matters and repeated entries are allowed.
type MultiIndex []int

// Generate returns every length-p multi-index with entries in [0, n), in
// odometer order (last coordinate fastest). For p == 0 it returns the
// single-element sequence holding only the empty marker.
//
// The ordering is reproducible; Densify and Contract rely on it.
func Generate(p, n int) []MultiIndex {
	if p == 0 {
		return []MultiIndex{nil}
	}
	if n <= 0 {
		return nil
	}

	total := 1
	for i := 0; i < p; i++ {
		total *= n
	}

	out := make([]MultiIndex, 0, total)
	current := make(MultiIndex, p)
	for {
		out = append(out, current.Clone())

		// Advance the odometer, rightmost digit first.
		pos := p - 1
		for pos >= 0 {
			current[pos]++
			if current[pos] < n {
				break
			}
			current[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}

// Valid reports whether m is a well-formed multi-index for basis size n and
// the declared dimension length: the empty marker is valid iff length is 0;
// otherwise m must have exactly length entries, each in [0, n).
func (m MultiIndex) Valid(n, length int) bool {
	if m == nil {
		return length == 0
	}
	if len(m) != length {
		return false
	}
	for _, v := range m {
		if v < 0 || v >= n {
			return false
		}
	}
	return true
}

// Insert returns a new multi-index with value r inserted at position k.
// The receiver is not modified. Insert(0, r) on the empty marker yields (r,).
func (m MultiIndex) Insert(k, r int) MultiIndex {
	out := make(MultiIndex, 0, len(m)+1)
	out = append(out, m[:k]...)
	out = append(out, r)
	out = append(out, m[k:]...)
	return out
}

// Equal reports whether two multi-indices are identical element-wise.
// The empty marker equals only the empty marker.
func (m MultiIndex) Equal(other MultiIndex) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// Compare orders multi-indices lexicographically, shorter first.
// The empty marker sorts before everything else.
func (m MultiIndex) Compare(other MultiIndex) int {
	for i := 0; i < len(m) && i < len(other); i++ {
		if m[i] != other[i] {
			if m[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(m) < len(other):
		return -1
	case len(m) > len(other):
		return 1
	default:
		return 0
	}
}

// Clone returns a copy of the multi-index. The empty marker clones to itself.
func (m MultiIndex) Clone() MultiIndex {
	if m == nil {
		return nil
	}
	out := make(MultiIndex, len(m))
	copy(out, m)
	return out
}

// String renders the multi-index as a tuple, e.g. "(0,2,1)". The empty
// marker renders as "()".
func (m MultiIndex) String() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// encode produces the canonical string form used inside Keys. It is the
// inverse of decode; the empty marker encodes to the empty string.
func (m MultiIndex) encode() string {
	if m == nil {
		return ""
	}
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// decode parses an encoded multi-index. Only encodings produced by encode
// are valid input.
func decode(s string) MultiIndex {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make(MultiIndex, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			panic(fmt.Sprintf("corrupt multi-index encoding %q", s))
		}
		out[i] = v
	}
	return out
}

// normalize converts an accepted index argument into a canonical MultiIndex.
// Accepted variants: a bare int (shorthand for a singleton multi-index), a
// MultiIndex or []int, and nil (the empty marker). Every access path funnels
// through this one conversion before validation.
func normalize(v any) (MultiIndex, bool) {
	switch idx := v.(type) {
	case nil:
		return nil, true
	case int:
		return MultiIndex{idx}, true
	case MultiIndex:
		return idx, true
	case []int:
		return MultiIndex(idx), true
	default:
		return nil, false
	}
}
