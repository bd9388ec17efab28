package symbolic

import (
	"fmt"
	"math/big"
)

// Expr is an immutable symbolic expression: a quotient num/den of two
// polynomials in normal form. The denominator is never the zero polynomial.
// Build Exprs with Num, Rat, Sym or Parse and combine them with the
// arithmetic methods; never construct the struct directly.
type Expr struct {
	num poly
	den poly
}

// newExpr wraps a quotient, keeping the zero expression canonical as 0/1.
func newExpr(num, den poly) *Expr {
	if polyIsZero(num) {
		return &Expr{num: polyZero(), den: polyOne()}
	}
	return &Expr{num: num, den: den}
}

// Num returns the integer constant n as an expression.
func Num(n int64) *Expr {
	return newExpr(polyNum(big.NewRat(n, 1)), polyOne())
}

// Rat returns the rational constant p/q. It panics when q is zero.
func Rat(p, q int64) *Expr {
	if q == 0 {
		panic("symbolic: zero denominator in Rat")
	}
	return newExpr(polyNum(big.NewRat(p, q)), polyOne())
}

// Sym returns the symbol with the given name as an expression.
func Sym(name string) *Expr {
	return newExpr(polySym(name), polyOne())
}

// IsZero reports whether the expression is the zero element.
func (x *Expr) IsZero() bool { return polyIsZero(x.num) }

// Add returns x + y.
func (x *Expr) Add(y *Expr) *Expr {
	if polyEqual(x.den, y.den) {
		return newExpr(polyAdd(x.num, y.num), x.den)
	}
	num := polyAdd(polyMul(x.num, y.den), polyMul(y.num, x.den))
	return newExpr(num, polyMul(x.den, y.den))
}

// Neg returns -x.
func (x *Expr) Neg() *Expr {
	return newExpr(polyNeg(x.num), x.den)
}

// Sub returns x - y.
func (x *Expr) Sub(y *Expr) *Expr {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x *Expr) Mul(y *Expr) *Expr {
	return newExpr(polyMul(x.num, y.num), polyMul(x.den, y.den))
}

// Div returns x / y. It panics when y is the zero expression, like
// big.Rat.Quo.
func (x *Expr) Div(y *Expr) *Expr {
	if y.IsZero() {
		panic("symbolic: division by zero expression")
	}
	return newExpr(polyMul(x.num, y.den), polyMul(x.den, y.num))
}

// Pow returns x raised to the integer power n. Negative powers invert the
// expression; raising zero to a negative power panics.
func (x *Expr) Pow(n int) *Expr {
	if n < 0 {
		if x.IsZero() {
			panic("symbolic: zero raised to a negative power")
		}
		return newExpr(polyPow(x.den, -n), polyPow(x.num, -n))
	}
	return newExpr(polyPow(x.num, n), polyPow(x.den, n))
}

// Equal reports algebraic equality of two expressions. Quotients are
// compared by cross-multiplication of normal forms, so no common-factor
// cancellation is needed: a/b equals c/d iff a*d equals c*b.
func (x *Expr) Equal(y *Expr) bool {
	return polyEqual(polyMul(x.num, y.den), polyMul(y.num, x.den))
}

// Subs returns the expression with every bound symbol replaced by its
// binding. Unbound symbols are left in place. Substituting a value that
// zeroes the denominator panics, like Div.
//
// Example:
//
//	f := symbolic.MustParse("1 - rs/r")
//	f.Subs(map[string]*symbolic.Expr{"rs": symbolic.Num(2), "r": symbolic.Num(4)}) // 1/2
func (x *Expr) Subs(bindings map[string]*Expr) *Expr {
	return polySubs(x.num, bindings).Div(polySubs(x.den, bindings))
}

// polySubs substitutes into a single polynomial. The result is an Expr
// because bindings may themselves be quotients.
func polySubs(a poly, bindings map[string]*Expr) *Expr {
	acc := Num(0)
	for _, t := range a {
		e := newExpr(polyNum(t.coeff), polyOne())
		for _, f := range t.factors {
			base, ok := bindings[f.sym]
			if !ok {
				base = Sym(f.sym)
			}
			e = e.Mul(base.Pow(f.pow))
		}
		acc = acc.Add(e)
	}
	return acc
}

// String renders the expression deterministically. A unit denominator is
// omitted; otherwise the quotient renders as "(num)/(den)".
func (x *Expr) String() string {
	if polyIsOne(x.den) {
		return polyString(x.num)
	}
	return fmt.Sprintf("(%s)/(%s)", polyString(x.num), polyString(x.den))
}
