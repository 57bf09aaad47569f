package net

import (
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/strand-ml/strand/internal/report"
	"github.com/strand-ml/strand/internal/rng"
)

// Sampling selects how Train picks the sample for each epoch.
type Sampling int

const (
	// Cyclic picks sample i mod N at epoch i. This is the default.
	Cyclic Sampling = iota

	// Shuffled picks a uniformly random sample each epoch, drawn from the
	// network's rng.Source.
	Shuffled
)

// Network is an ordered sequence of layers trained by online stochastic
// gradient descent.
//
// Adjacent layers must chain: each layer's output width equals the next
// layer's input width. The invariant is enforced at insertion time by
// AddLayer and never re-checked afterwards.
//
// Example:
//
//	network := net.New()
//	_ = network.AddLayer(net.NewDense(2, 2))
//	_ = network.AddLayer(net.NewDense(2, 1))
//	initial, final, err := network.Train(inputs, expected, 0.1, 1000)
type Network struct {
	layers []NetLayer

	sampling Sampling
	src      rng.Source
	reporter report.Reporter
}

// New creates an empty network with cyclic sampling and no progress
// reporting.
func New() *Network {
	return &Network{
		sampling: Cyclic,
		reporter: report.Discard,
	}
}

// SetReporter directs per-epoch progress to r. A nil r disables reporting.
func (n *Network) SetReporter(r report.Reporter) {
	if r == nil {
		r = report.Discard
	}
	n.reporter = r
}

// SetSampling selects the sample-selection order for Train. src is
// consulted only for Shuffled; a nil src falls back to a time-seeded
// source.
func (n *Network) SetSampling(s Sampling, src rng.Source) {
	n.sampling = s
	if s == Shuffled && src == nil {
		src = rng.New(time.Now().UnixNano())
	}
	n.src = src
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns the layer at index i.
//
// Panics if i is out of bounds.
func (n *Network) Layer(i int) NetLayer {
	if i < 0 || i >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[i]
}

// AddLayer appends layer after validating that its input width matches the
// current last layer's output width. The first layer is accepted
// unconditionally.
//
// Returns ErrShapeMismatch on violation; the network is left unchanged.
func (n *Network) AddLayer(layer NetLayer) error {
	if len(n.layers) > 0 {
		_, prevOut := n.layers[len(n.layers)-1].Format()
		in, out := layer.Format()
		if prevOut != in {
			return errors.Wrapf(ErrShapeMismatch, "layer %d→%d cannot follow a layer with output width %d", in, out, prevOut)
		}
	}
	n.layers = append(n.layers, layer)
	return nil
}

// Forward runs pure inference, chaining every layer's Forward in order.
// No caches are touched and the network is not mutated.
//
// Returns ErrEmptyNetwork if no layers have been added.
func (n *Network) Forward(inputs []float64) ([]float64, error) {
	if len(n.layers) == 0 {
		return nil, errors.Wrap(ErrEmptyNetwork, "forward")
	}
	var err error
	for _, layer := range n.layers {
		inputs, err = layer.Forward(inputs)
		if err != nil {
			return nil, err
		}
	}
	return inputs, nil
}

// Train runs exactly epochs learning steps on the given sample/target
// pairs with the given learning rate.
//
// Sample selection is cyclic by default: epoch i trains on
// (inputs[i mod N], expected[i mod N]); see SetSampling. Before the epoch
// loop a priming learning step on sample 0 produces the returned initial
// loss; the returned final loss is the loss of the last epoch's step. Each
// step's (epoch, loss) pair is handed to the configured Reporter.
//
// A single learning step either fully completes or the whole Train call
// aborts; there are no partial-failure semantics.
func (n *Network) Train(inputs, expected [][]float64, lr float64, epochs int) (initial, final float64, err error) {
	if len(n.layers) == 0 {
		return 0, 0, errors.Wrap(ErrEmptyNetwork, "train")
	}
	if len(inputs) == 0 {
		return 0, 0, ErrEmptyTrainingSet
	}
	if len(inputs) != len(expected) {
		return 0, 0, errors.Wrapf(ErrLengthMismatch, "%d input samples but %d targets", len(inputs), len(expected))
	}

	initial, err = n.Learn(inputs[0], expected[0], lr)
	if err != nil {
		return 0, 0, err
	}

	size := len(inputs)
	for i := 0; i < epochs; i++ {
		k := i % size
		if n.sampling == Shuffled {
			k = n.src.Intn(size)
		}
		final, err = n.Learn(inputs[k], expected[k], lr)
		if err != nil {
			return 0, 0, err
		}
		n.reporter.Epoch(i, final)
	}
	return initial, final, nil
}

// Learn runs one online training step on a single sample: a caching
// forward pass through every layer, the backward pass, the weight-update
// pass, and a fresh forward pass to recompute the loss against target.
//
// The update pass starts at the second layer and pairs each layer with its
// predecessor's cached output, so the first layer's weights and biases are
// never modified by Learn. Callers relying on a trainable first layer must
// account for this.
func (n *Network) Learn(sample, target []float64, lr float64) (float64, error) {
	if len(n.layers) == 0 {
		return 0, errors.Wrap(ErrEmptyNetwork, "learn")
	}

	if err := n.forwardMut(sample); err != nil {
		return 0, err
	}
	if err := n.backward(target); err != nil {
		return 0, err
	}

	for i := 1; i < len(n.layers); i++ {
		prev := n.layers[i-1].LastResult()
		if err := n.layers[i].UpdateLayer(prev, lr); err != nil {
			return 0, err
		}
	}

	return n.Loss(sample, target)
}

// Loss returns the sum of squared elementwise differences between a fresh
// forward pass on input and expected.
func (n *Network) Loss(input, expected []float64) (float64, error) {
	out, err := n.Forward(input)
	if err != nil {
		return 0, err
	}
	if len(expected) != len(out) {
		return 0, errors.Wrapf(ErrLengthMismatch, "network outputs %d values, expected vector has %d", len(out), len(expected))
	}
	dist := floats.Distance(out, expected, 2)
	return dist * dist, nil
}

// forwardMut chains ForwardMut across the sequence, leaving every layer's
// activated output cached for the backward and update passes.
func (n *Network) forwardMut(inputs []float64) error {
	var err error
	for _, layer := range n.layers {
		inputs, err = layer.ForwardMut(inputs)
		if err != nil {
			return err
		}
	}
	return nil
}

// backward propagates the error from the output layer down to the first
// layer, leaving every layer's delta cached for the update pass.
func (n *Network) backward(expected []float64) error {
	last := len(n.layers) - 1

	deltas, err := n.layers[last].BackwardOutput(expected)
	if err != nil {
		return err
	}
	weights := n.layers[last].Weights()

	for i := last - 1; i >= 0; i-- {
		deltas, err = n.layers[i].Backward(weights, deltas)
		if err != nil {
			return err
		}
		weights = n.layers[i].Weights()
	}
	return nil
}
