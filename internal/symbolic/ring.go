package symbolic

// Ring adapts Expr arithmetic to the tensor scalar-ring interface. The zero
// value is ready to use.
type Ring struct{}

// New returns a symbolic Ring.
func New() Ring { return Ring{} }

// Add returns x + y.
func (Ring) Add(x, y *Expr) *Expr { return x.Add(y) }

// Mul returns x * y.
func (Ring) Mul(x, y *Expr) *Expr { return x.Mul(y) }

// Zero returns the zero expression.
func (Ring) Zero() *Expr { return Num(0) }

// Equal reports algebraic equality.
func (Ring) Equal(x, y *Expr) bool { return x.Equal(y) }
