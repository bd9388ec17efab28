package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpr_Constants(t *testing.T) {
	assert.True(t, Num(0).IsZero())
	assert.False(t, Num(1).IsZero())
	assert.True(t, Num(2).Equal(Rat(4, 2)))
	assert.Equal(t, "1/2", Rat(1, 2).String())
	assert.Equal(t, "-3", Num(-3).String())
}

func TestExpr_RatPanicsOnZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { Rat(1, 0) })
}

func TestExpr_AddSubNeg(t *testing.T) {
	x, y := Sym("x"), Sym("y")

	assert.True(t, x.Add(y).Equal(y.Add(x)))
	assert.True(t, x.Sub(x).IsZero())
	assert.True(t, x.Neg().Add(x).IsZero())
	assert.True(t, x.Add(Num(0)).Equal(x))
}

func TestExpr_BinomialIdentity(t *testing.T) {
	x, y := Sym("x"), Sym("y")

	lhs := x.Add(y).Pow(2)
	rhs := x.Pow(2).Add(Num(2).Mul(x).Mul(y)).Add(y.Pow(2))
	assert.True(t, lhs.Equal(rhs))
}

func TestExpr_QuotientEquality(t *testing.T) {
	x := Sym("x")

	// x/x equals 1 without any explicit cancellation.
	assert.True(t, x.Div(x).Equal(Num(1)))

	// (x^2 - 1)/(x - 1) equals x + 1.
	lhs := x.Pow(2).Sub(Num(1)).Div(x.Sub(Num(1)))
	assert.True(t, lhs.Equal(x.Add(Num(1))))
}

func TestExpr_DivByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Num(1).Div(Num(0)) })
	assert.Panics(t, func() { Num(0).Pow(-1) })
}

func TestExpr_NegativePow(t *testing.T) {
	x := Sym("x")
	assert.True(t, x.Pow(-1).Mul(x).Equal(Num(1)))
	assert.True(t, x.Pow(0).Equal(Num(1)))
}

func TestExpr_Subs(t *testing.T) {
	f := MustParse("1 - rs/r")

	tests := []struct {
		name     string
		bindings map[string]*Expr
		want     *Expr
	}{
		{
			name:     "full numeric substitution",
			bindings: map[string]*Expr{"rs": Num(2), "r": Num(4)},
			want:     Rat(1, 2),
		},
		{
			name:     "partial substitution keeps free symbols",
			bindings: map[string]*Expr{"rs": Num(2)},
			want:     MustParse("1 - 2/r"),
		},
		{
			name:     "substituting an expression",
			bindings: map[string]*Expr{"rs": Sym("r")},
			want:     Num(0),
		},
		{
			name:     "no bindings is identity",
			bindings: nil,
			want:     f,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Subs(tt.bindings)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestExpr_StringDeterministic(t *testing.T) {
	e := Sym("y").Add(Sym("x")).Add(Num(3)).Add(Sym("x").Pow(2))
	require.Equal(t, "x^2 + x + y + 3", e.String())

	q := Num(1).Div(Num(1).Sub(Sym("x")))
	assert.Equal(t, "(1)/(-x + 1)", q.String())
}

func TestExpr_ImmutableOperands(t *testing.T) {
	x := Sym("x")
	one := Num(1)
	_ = x.Add(one).Mul(x).Sub(one).Pow(3)

	assert.Equal(t, "x", x.String())
	assert.Equal(t, "1", one.String())
}
