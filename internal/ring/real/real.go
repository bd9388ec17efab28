// Package real provides the float64 scalar ring.
//
// It is the plain numeric backend for the tensor machinery: exact IEEE-754
// arithmetic with exact equality, no tolerance. Use the symbolic ring when
// components must stay exact under division.
package real

// Ring is the float64 ring. The zero value is ready to use.
type Ring struct{}

// New returns a float64 Ring.
func New() Ring { return Ring{} }

// Add returns x + y.
func (Ring) Add(x, y float64) float64 { return x + y }

// Mul returns x * y.
func (Ring) Mul(x, y float64) float64 { return x * y }

// Zero returns 0.
func (Ring) Zero() float64 { return 0 }

// Equal reports x == y, with no tolerance.
func (Ring) Equal(x, y float64) bool { return x == y }
