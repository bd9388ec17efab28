// Package symbolic implements exact symbolic scalar expressions.
//
// An Expr is a rational function: a quotient of two multivariate polynomials
// with exact big.Rat coefficients, each kept in a canonical normal form (a
// map from monomials to coefficients). Equality compares normal forms by
// cross-multiplication, so algebraically equal expressions built along
// different routes compare equal without a simplification pass.
//
// Exprs are immutable; every operation returns a new expression. The package
// also provides Parse for the small arithmetic grammar used by declarative
// tensor definitions, and Subs for substituting symbols with values or other
// expressions.
//
// Example:
//
//	rs, r := symbolic.Sym("rs"), symbolic.Sym("r")
//	f := symbolic.Num(1).Sub(rs.Div(r))     // 1 - rs/r
//	g := f.Subs(map[string]*symbolic.Expr{"rs": symbolic.Num(2)})
package symbolic
