package net

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/strand-ml/strand/internal/rng"
)

// Neuron is a single fully-connected unit: a fixed-length weight vector and
// a scalar bias. Its output is the dot product of its weights with an input
// vector, plus the bias.
//
// A Neuron is owned by exactly one dense layer. Inside a layer the weight
// vector aliases a row of the layer's weight matrix, so mutations through
// either are visible to both.
type Neuron struct {
	weights *mat.VecDense
	bias    float64
}

// NewNeuron creates a neuron with a zero weight vector of length in and the
// given bias.
func NewNeuron(in int, bias float64) *Neuron {
	return &Neuron{
		weights: mat.NewVecDense(in, nil),
		bias:    bias,
	}
}

// newRowNeuron wraps an existing weight vector without copying. Used by
// Dense to address matrix rows as per-unit views.
func newRowNeuron(weights *mat.VecDense, bias float64) *Neuron {
	return &Neuron{weights: weights, bias: bias}
}

// In returns the neuron's input width.
func (n *Neuron) In() int {
	return n.weights.Len()
}

// Bias returns the neuron's bias.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// Randomize draws every weight independently from a uniform [0, 1)
// distribution. The bias is left unchanged.
func (n *Neuron) Randomize(src rng.Source) {
	for i := 0; i < n.weights.Len(); i++ {
		n.weights.SetVec(i, src.Float64())
	}
}

// Normalize resets every weight to 1.0 and the bias to 0.0.
//
// This is a deterministic baseline reset, not a statistical normalization;
// it exists to produce reproducible behavior independent of any prior
// randomized state.
func (n *Neuron) Normalize() {
	for i := 0; i < n.weights.Len(); i++ {
		n.weights.SetVec(i, 1.0)
	}
	n.bias = 0.0
}

// Forward computes dot(weights, x) + bias.
//
// Pure; the neuron is not mutated. Returns ErrLengthMismatch if len(x)
// differs from the neuron's input width.
func (n *Neuron) Forward(x []float64) (float64, error) {
	if len(x) != n.weights.Len() {
		return 0, errors.Wrapf(ErrLengthMismatch, "neuron expects %d inputs, got %d", n.weights.Len(), len(x))
	}
	return mat.Dot(n.weights, mat.NewVecDense(len(x), x)) + n.bias, nil
}

// Weights returns a snapshot of the neuron's weight vector.
func (n *Neuron) Weights() []float64 {
	out := make([]float64, n.weights.Len())
	for i := range out {
		out[i] = n.weights.AtVec(i)
	}
	return out
}

// SetWeights copies ws into the neuron's weight vector.
//
// Returns ErrLengthMismatch if len(ws) differs from the neuron's input
// width.
func (n *Neuron) SetWeights(ws []float64) error {
	if len(ws) != n.weights.Len() {
		return errors.Wrapf(ErrLengthMismatch, "neuron holds %d weights, got %d", n.weights.Len(), len(ws))
	}
	for i, w := range ws {
		n.weights.SetVec(i, w)
	}
	return nil
}
