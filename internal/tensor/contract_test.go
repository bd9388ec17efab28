package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci-ml/ricci/internal/ring/real"
)

func TestContract_TraceOfMixedTensor(t *testing.T) {
	// Dimension 2, type (1,1), T^0_0 = 3, T^1_1 = 5. Contracting the only
	// slot pair is the trace: sum over r of T^r_r = 8.
	tt := mixed(t)

	trace, err := Contract(tt, 0, 0)
	require.NoError(t, err)

	p, q := trace.Type()
	assert.Equal(t, 0, p)
	assert.Equal(t, 0, q)

	v, err := trace.At(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
}

func TestContract_ReducesRank(t *testing.T) {
	ring := real.New()
	tt, err := New(testBasis, 2, 1, map[Key]float64{
		NewKey(MultiIndex{0, 1}, MultiIndex{0}): 1,
	}, ring)
	require.NoError(t, err)

	reduced, err := Contract(tt, 0, 0)
	require.NoError(t, err)
	p, q := reduced.Type()
	assert.Equal(t, 1, p)
	assert.Equal(t, 0, q)
}

func TestContract_SlotPositionMatters(t *testing.T) {
	// T^{ab}_c with T^{01}_0 = 1 as its only component. Contracting slot 0
	// picks up terms T^{r b}_r, contracting slot 1 picks up T^{a r}_r:
	// different slots, different tensors.
	ring := real.New()
	tt, err := New(testBasis, 2, 1, map[Key]float64{
		NewKey(MultiIndex{0, 1}, MultiIndex{0}): 1,
	}, ring)
	require.NoError(t, err)

	first, err := Contract(tt, 0, 0) // Σ_r T^{r b}_r: hits r=0, b=1.
	require.NoError(t, err)
	v, err := first.At(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	v, err = first.At(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	second, err := Contract(tt, 1, 0) // Σ_r T^{a r}_r: T^{01}_0 never matches.
	require.NoError(t, err)
	v, err = second.At(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	v, err = second.At(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestContract_ResultIsDense(t *testing.T) {
	ring := real.New()
	tt, err := New(testBasis, 1, 2, nil, ring)
	require.NoError(t, err)

	result, err := Contract(tt, 0, 0)
	require.NoError(t, err)

	// Zero sums are stored, not dropped: dim^(q-1) = 2 entries.
	assert.Equal(t, 2, result.NumStored())
}

func TestContract_Preconditions(t *testing.T) {
	ring := real.New()
	tests := []struct {
		name    string
		contra  int
		cova    int
		i, j    int
		wantErr error
	}{
		{name: "no contravariant slot", contra: 0, cova: 2, i: 0, j: 0, wantErr: ErrNotContractible},
		{name: "no covariant slot", contra: 2, cova: 0, i: 0, j: 0, wantErr: ErrNotContractible},
		{name: "contravariant slot too big", contra: 1, cova: 1, i: 1, j: 0, wantErr: ErrSlotRange},
		{name: "contravariant slot negative", contra: 1, cova: 1, i: -1, j: 0, wantErr: ErrSlotRange},
		{name: "covariant slot too big", contra: 1, cova: 1, i: 0, j: 1, wantErr: ErrSlotRange},
		{name: "covariant slot negative", contra: 1, cova: 1, i: 0, j: -1, wantErr: ErrSlotRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, err := New(testBasis, tt.contra, tt.cova, nil, ring)
			require.NoError(t, err)
			_, err = Contract(subject, tt.i, tt.j)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLowerIndex_DiagonalMetric(t *testing.T) {
	// Metric diag(2, 3); lowering v^μ = (1, 1) gives v_m = Σ_r v^r g_{rm},
	// i.e. (2, 3).
	ring := real.New()
	g, err := NewMetric([][]float64{{2, 0}, {0, 3}}, testBasis, ring)
	require.NoError(t, err)

	v, err := New(testBasis, 1, 0, map[Key]float64{
		NewKey(MultiIndex{0}, nil): 1,
		NewKey(MultiIndex{1}, nil): 1,
	}, ring)
	require.NoError(t, err)

	lowered, err := LowerIndex(v, g, 0)
	require.NoError(t, err)

	p, q := lowered.Type()
	assert.Equal(t, 0, p)
	assert.Equal(t, 1, q)

	got, err := lowered.At(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
	got, err = lowered.At(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestLowerIndex_KeepsRemainingCovariantOrder(t *testing.T) {
	// A (1,1)-tensor lowered against the identity metric keeps its original
	// covariant slot first; the lowered index is appended last.
	ring := real.New()
	g, err := NewMetric([][]float64{{1, 0}, {0, 1}}, testBasis, ring)
	require.NoError(t, err)

	tt, err := New(testBasis, 1, 1, map[Key]float64{
		NewKey(MultiIndex{0}, MultiIndex{1}): 7,
	}, ring)
	require.NoError(t, err)

	lowered, err := LowerIndex(tt, g, 0)
	require.NoError(t, err)

	p, q := lowered.Type()
	assert.Equal(t, 0, p)
	assert.Equal(t, 2, q)

	// Original cova slot 1 stays first; lowered slot (= 0 under identity)
	// comes second.
	v, err := lowered.At(nil, MultiIndex{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	v, err = lowered.At(nil, MultiIndex{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestLowerIndex_Errors(t *testing.T) {
	ring := real.New()
	g, err := NewMetric([][]float64{{1, 0}, {0, 1}}, testBasis, ring)
	require.NoError(t, err)

	noContra, err := New(testBasis, 0, 1, nil, ring)
	require.NoError(t, err)
	_, err = LowerIndex(noContra, g, 0)
	assert.ErrorIs(t, err, ErrNotContractible)

	v, err := New(testBasis, 1, 0, nil, ring)
	require.NoError(t, err)
	_, err = LowerIndex(v, g, 1)
	assert.ErrorIs(t, err, ErrSlotRange)

	otherG, err := NewMetric([][]float64{{1}}, Basis{"f0"}, ring)
	require.NoError(t, err)
	_, err = LowerIndex(v, otherG, 0)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
