package net

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/internal/rng"
)

// normalizedNet builds a 2→2→1 network with all-ones weights, zero biases
// and the default sigmoid activation.
func normalizedNet(t *testing.T) *Network {
	t.Helper()

	hidden := NewDense(2, 2)
	output := NewDense(2, 1)
	hidden.Normalize()
	output.Normalize()

	n := New()
	require.NoError(t, n.AddLayer(hidden))
	require.NoError(t, n.AddLayer(output))
	return n
}

func TestNetwork_AddLayer_ShapeMismatch(t *testing.T) {
	n := New()
	require.NoError(t, n.AddLayer(NewDense(2, 3)))

	err := n.AddLayer(NewDense(2, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	// The rejected layer must not have been appended.
	assert.Equal(t, 1, n.Len())
}

func TestNetwork_AddLayer_FirstLayerUnchecked(t *testing.T) {
	n := New()
	assert.NoError(t, n.AddLayer(NewDense(17, 4)))
}

func TestNetwork_Forward_Empty(t *testing.T) {
	n := New()

	_, err := n.Forward([]float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyNetwork))
}

func TestNetwork_Forward_OutputWidth(t *testing.T) {
	n := New()
	require.NoError(t, n.AddLayer(NewDense(4, 3)))
	require.NoError(t, n.AddLayer(NewDense(3, 2)))

	out, err := n.Forward([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestNetwork_Forward_Normalized(t *testing.T) {
	n := normalizedNet(t)

	out, err := n.Forward([]float64{1, 1})
	require.NoError(t, err)
	require.Len(t, out, 1)

	// First layer pre-activation is [2, 2]; with sigmoid the hidden
	// output is [σ(2), σ(2)], and the output unit sees 2σ(2).
	h := sigmoid(2)
	want := sigmoid(2 * h)
	assert.InDelta(t, want, out[0], 1e-15)
}

func TestNetwork_Forward_DeterministicAfterNormalize(t *testing.T) {
	// Normalize erases any prior randomized state, so two independently
	// built networks agree exactly.
	a := New()
	hidden := NewDense(2, 2)
	output := NewDense(2, 1)
	hidden.Randomize(rng.New(99))
	output.Randomize(rng.New(100))
	hidden.Normalize()
	output.Normalize()
	require.NoError(t, a.AddLayer(hidden))
	require.NoError(t, a.AddLayer(output))

	b := normalizedNet(t)

	outA, err := a.Forward([]float64{0.3, 0.7})
	require.NoError(t, err)
	outB, err := b.Forward([]float64{0.3, 0.7})
	require.NoError(t, err)
	assert.Equal(t, outB, outA)
}

func TestNetwork_Forward_Idempotent(t *testing.T) {
	n := New()
	hidden := NewDense(2, 2)
	output := NewDense(2, 1)
	src := rng.New(5)
	hidden.Randomize(src)
	output.Randomize(src)
	require.NoError(t, n.AddLayer(hidden))
	require.NoError(t, n.AddLayer(output))

	first, err := n.Forward([]float64{0.2, 0.8})
	require.NoError(t, err)
	second, err := n.Forward([]float64{0.2, 0.8})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNetwork_Loss(t *testing.T) {
	n := normalizedNet(t)

	out, err := n.Forward([]float64{1, 1})
	require.NoError(t, err)

	loss, err := n.Loss([]float64{1, 1}, []float64{0})
	require.NoError(t, err)
	assert.InDelta(t, out[0]*out[0], loss, 1e-15)
}

func TestNetwork_Loss_LengthMismatch(t *testing.T) {
	n := normalizedNet(t)

	_, err := n.Loss([]float64{1, 1}, []float64{0, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestNetwork_LayerAccessors(t *testing.T) {
	n := New()
	hidden := NewDense(2, 2)
	require.NoError(t, n.AddLayer(hidden))

	assert.Equal(t, 1, n.Len())
	assert.Equal(t, NetLayer(hidden), n.Layer(0))
	assert.Panics(t, func() { n.Layer(1) })
}
