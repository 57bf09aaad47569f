// Copyright 2026 Strand ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package net

import (
	"io"

	"github.com/strand-ml/strand/internal/net"
	"github.com/strand-ml/strand/internal/report"
	"github.com/strand-ml/strand/internal/rng"
)

// Network is an ordered sequence of layers trained by online stochastic
// gradient descent.
type Network = net.Network

// New creates an empty network.
func New() *Network {
	return net.New()
}

// NetLayer is the capability contract every layer kind must support.
type NetLayer = net.NetLayer

// Dense is a fully-connected layer with fixed input and output widths.
type Dense = net.Dense

// NewDense creates a dense layer with out zero-initialized neurons of
// input width in.
//
// Example:
//
//	layer := net.NewDense(2, 1)
func NewDense(in, out int) *Dense {
	return net.NewDense(in, out)
}

// Neuron is a single fully-connected unit.
type Neuron = net.Neuron

// NewNeuron creates a neuron with a zero weight vector of length in and
// the given bias.
func NewNeuron(in int, bias float64) *Neuron {
	return net.NewNeuron(in, bias)
}

// Sampling selects how Train picks the sample for each epoch.
type Sampling = net.Sampling

// Sample-selection orders.
const (
	Cyclic   = net.Cyclic
	Shuffled = net.Shuffled
)

// Source supplies uniform randomness for weight initialization and
// shuffled sampling.
type Source = rng.Source

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return rng.New(seed)
}

// Reporter receives one (epoch, loss) pair per training step.
type Reporter = report.Reporter

// DiscardReporter drops all training progress.
var DiscardReporter = report.Discard

// WriterReporter returns a Reporter that rewrites a progress line on w.
func WriterReporter(w io.Writer) Reporter {
	return report.Writer(w)
}

// Fatal errors.
var (
	ErrShapeMismatch    = net.ErrShapeMismatch
	ErrEmptyNetwork     = net.ErrEmptyNetwork
	ErrEmptyTrainingSet = net.ErrEmptyTrainingSet
	ErrLengthMismatch   = net.ErrLengthMismatch
)
