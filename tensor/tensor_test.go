// Copyright 2025 Ricci ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci-ml/ricci/ring/real"
	"github.com/ricci-ml/ricci/symbolic"
	"github.com/ricci-ml/ricci/tensor"
)

func TestPublicAPI_RealRing(t *testing.T) {
	ring := real.New()
	basis := tensor.Basis{"e0", "e1"}

	g, err := tensor.FromMatrix([][]float64{
		{1, 2},
		{3, 4},
	}, basis, ring)
	require.NoError(t, err)

	v, err := g.At(nil, tensor.MultiIndex{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	sum, err := g.Add(g)
	require.NoError(t, err)
	v, err = sum.At(nil, tensor.MultiIndex{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
}

func TestPublicAPI_SymbolicContraction(t *testing.T) {
	ring := symbolic.New()
	basis := tensor.Basis{"e0", "e1"}

	tt, err := tensor.New(basis, 1, 1, map[tensor.Key]*symbolic.Expr{
		tensor.NewKey(tensor.MultiIndex{0}, tensor.MultiIndex{0}): symbolic.Sym("a"),
		tensor.NewKey(tensor.MultiIndex{1}, tensor.MultiIndex{1}): symbolic.Sym("b"),
	}, ring)
	require.NoError(t, err)

	trace, err := tensor.Contract(tt, 0, 0)
	require.NoError(t, err)

	v, err := trace.At(nil, nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(symbolic.MustParse("a + b")))
}

func TestPublicAPI_LowerIndexSymbolic(t *testing.T) {
	ring := symbolic.New()
	basis := tensor.Basis{"dt", "dr"}

	g, err := tensor.NewMetric([][]*symbolic.Expr{
		{symbolic.MustParse("-(1 - rs/r)"), symbolic.Num(0)},
		{symbolic.Num(0), symbolic.MustParse("1/(1 - rs/r)")},
	}, basis, ring)
	require.NoError(t, err)

	u, err := tensor.New(basis, 1, 0, map[tensor.Key]*symbolic.Expr{
		tensor.NewKey(tensor.MultiIndex{1}, nil): symbolic.Num(1),
	}, ring)
	require.NoError(t, err)

	lowered, err := tensor.LowerIndex(u, g, 0)
	require.NoError(t, err)

	v, err := lowered.At(nil, 1)
	require.NoError(t, err)
	assert.True(t, v.Equal(symbolic.MustParse("1/(1 - rs/r)")))

	v, err = lowered.At(nil, 0)
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

func TestPublicAPI_ErrorsAreMatchable(t *testing.T) {
	ring := real.New()
	basis := tensor.Basis{"e0", "e1"}

	_, err := tensor.New(basis, 1, 0, map[tensor.Key]float64{
		tensor.NewKey(tensor.MultiIndex{0, 1}, nil): 1,
	}, ring)
	assert.ErrorIs(t, err, tensor.ErrInvalidMultiIndex)

	tt, err := tensor.New(basis, 1, 1, nil, ring)
	require.NoError(t, err)
	_, err = tt.At(5, 0)
	assert.ErrorIs(t, err, tensor.ErrBadIndexPair)
	_, err = tensor.Contract(tt, 2, 0)
	assert.ErrorIs(t, err, tensor.ErrSlotRange)
}

func TestPublicAPI_GenerateOrder(t *testing.T) {
	got := tensor.Generate(1, 3)
	require.Len(t, got, 3)
	for i, m := range got {
		assert.True(t, m.Equal(tensor.MultiIndex{i}))
	}
}
