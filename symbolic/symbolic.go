// Copyright 2025 Ricci ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package symbolic provides exact symbolic scalar expressions for tensor
// components.
//
// An Expr is an immutable rational function with exact coefficients.
// Algebraically equal expressions compare equal regardless of how they were
// built, which is what tensor equality and contraction need.
//
// Example:
//
//	f, err := symbolic.Parse("1 - rs/r")
//	g := f.Subs(map[string]*symbolic.Expr{"rs": symbolic.Num(2)})
package symbolic

import (
	"github.com/ricci-ml/ricci/internal/symbolic"
)

// Expr is an immutable symbolic expression: a quotient of two multivariate
// polynomials with exact rational coefficients.
type Expr = symbolic.Expr

// Ring adapts Expr arithmetic to the tensor scalar-ring interface.
type Ring = symbolic.Ring

// ErrParse reports a malformed expression source.
var ErrParse = symbolic.ErrParse

// New returns the symbolic scalar ring.
func New() Ring { return symbolic.New() }

// Num returns the integer constant n as an expression.
func Num(n int64) *Expr { return symbolic.Num(n) }

// Rat returns the rational constant p/q. It panics when q is zero.
func Rat(p, q int64) *Expr { return symbolic.Rat(p, q) }

// Sym returns the symbol with the given name as an expression.
func Sym(name string) *Expr { return symbolic.Sym(name) }

// Parse evaluates an arithmetic expression over rational literals and
// symbols: + - * / ^, parentheses and unary minus.
func Parse(src string) (*Expr, error) { return symbolic.Parse(src) }

// MustParse is Parse for trusted, hand-written sources; it panics on error.
func MustParse(src string) *Expr { return symbolic.MustParse(src) }
