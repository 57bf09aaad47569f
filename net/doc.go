// Copyright 2026 Strand ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package net provides the public surface of the feedforward network
// trainer.
//
// # Overview
//
// This package contains:
//   - Network: ordered layer sequence with validated chaining
//   - Dense: fully-connected layer over a gonum weight matrix
//   - Neuron: single unit (weight vector + bias)
//   - NetLayer: the capability contract for custom layer kinds
//   - Reporter: per-epoch training progress sink
//
// # Basic Usage
//
//	import (
//	    "github.com/strand-ml/strand/act"
//	    "github.com/strand-ml/strand/net"
//	)
//
//	func main() {
//	    hidden := net.NewDense(2, 2)
//	    output := net.NewDense(2, 1)
//	    _ = hidden.SetActivation(act.Sigmoid)
//	    _ = output.SetActivation(act.Sigmoid)
//
//	    src := net.NewSource(42)
//	    hidden.Randomize(src)
//	    output.Randomize(src)
//
//	    network := net.New()
//	    _ = network.AddLayer(hidden)
//	    _ = network.AddLayer(output)
//
//	    initial, final, err := network.Train(inputs, expected, 0.1, 1000)
//	    ...
//	}
//
// Training is online stochastic gradient descent: one sample per epoch,
// selected cyclically by index modulo the dataset size unless configured
// otherwise with SetSampling.
package net
