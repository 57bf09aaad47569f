// Package net implements the feedforward network engine: neurons, dense
// layers, and the network orchestrator that chains layers, runs online
// stochastic gradient descent with manually derived backpropagation, and
// tracks loss.
//
// The engine is fully single-threaded and synchronous. A network is
// exclusively owned by whichever caller is constructing or training it;
// no concurrent training or inference against the same network is
// supported.
package net

// NetLayer is the capability contract every layer kind must support.
//
// A layer caches its most recent activated output (via ForwardMut) and its
// most recent per-unit delta (via BackwardOutput or Backward). Within one
// learning step the valid call order is ForwardMut, then one backward form,
// then UpdateLayer; caches must not be read before being written in that
// sequence.
type NetLayer interface {
	// Forward computes the layer's activated output for inputs. Pure;
	// no caches are touched. Fails with ErrLengthMismatch if len(inputs)
	// differs from the layer's input width.
	Forward(inputs []float64) ([]float64, error)

	// ForwardMut is Forward plus caching: the activated output is stored
	// for later use by the backward and update passes. This is the form
	// used during training.
	ForwardMut(inputs []float64) ([]float64, error)

	// Format returns the layer's (input width, output width) pair.
	Format() (in, out int)

	// Weights returns a snapshot of the current per-unit weight vectors,
	// one row per unit.
	Weights() [][]float64

	// LastResult returns the most recent cached activated output.
	LastResult() []float64

	// Errors returns the most recent cached per-unit delta.
	Errors() []float64

	// BackwardOutput computes the terminal (output) layer's delta from
	// the expected target:
	//
	//	delta = (expected - out) ∘ (expected - out) ∘ d(out)
	//
	// where out is the cached activated output and d the activation
	// derivative evaluated on that output. The squared-residual form is
	// intentional and load-bearing for matching trained outcomes; it is
	// not the 2·(out-expected) MSE gradient.
	BackwardOutput(expected []float64) ([]float64, error)

	// Backward computes a non-terminal layer's delta from the next
	// layer's weight matrix and delta:
	//
	//	delta = (nextWeightsᵀ · nextDeltas) ∘ d(out)
	//
	// the standard chain rule through the next layer's weights, with the
	// derivative again evaluated on the cached activated output.
	Backward(nextWeights [][]float64, nextDeltas []float64) ([]float64, error)

	// UpdateLayer applies one in-place gradient descent step using the
	// cached delta and the previous layer's cached output:
	//
	//	weight[i][j] -= lr * delta[i] * prevResult[j]
	//	bias[i]      -= lr * delta[i]
	UpdateLayer(prevResult []float64, lr float64) error
}
