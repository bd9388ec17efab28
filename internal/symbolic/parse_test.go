package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	x, y := Sym("x"), Sym("y")

	tests := []struct {
		name string
		src  string
		want *Expr
	}{
		{name: "integer", src: "42", want: Num(42)},
		{name: "decimal", src: "1.5", want: Rat(3, 2)},
		{name: "symbol", src: "x", want: x},
		{name: "unicode symbol", src: "sinθ", want: Sym("sinθ")},
		{name: "sum", src: "x + y", want: x.Add(y)},
		{name: "precedence", src: "x + y*x", want: x.Add(y.Mul(x))},
		{name: "parens", src: "(x + y)*x", want: x.Add(y).Mul(x)},
		{name: "unary minus", src: "-x", want: x.Neg()},
		{name: "double negation", src: "--x", want: x},
		{name: "subtraction chain", src: "1 - x - y", want: Num(1).Sub(x).Sub(y)},
		{name: "power", src: "x^3", want: x.Pow(3)},
		{name: "negative power", src: "x^-2", want: x.Pow(-2)},
		{name: "quotient", src: "1/(1 - x)", want: Num(1).Div(Num(1).Sub(x))},
		{name: "schwarzschild tt", src: "-(1 - rs/r)", want: Num(1).Sub(Sym("rs").Div(Sym("r"))).Neg()},
		{name: "whitespace tolerated", src: "  x +\ty ", want: x.Add(y)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.src)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "trailing operator", src: "x +"},
		{name: "unbalanced parens", src: "(x + y"},
		{name: "unexpected character", src: "x & y"},
		{name: "adjacent operands", src: "x y"},
		{name: "division by zero literal", src: "1/0"},
		{name: "division by vanishing expression", src: "1/(x - x)"},
		{name: "zero to negative power", src: "0^-1"},
		{name: "symbolic exponent", src: "x^y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.True(t, MustParse("x").Equal(Sym("x")))
	assert.Panics(t, func() { MustParse("(") })
}
