// Copyright 2026 Strand ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package net_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/act"
	"github.com/strand-ml/strand/net"
)

// TestEndToEnd drives the public surface the way a caller would: build,
// randomize, train on a repeated sample, infer.
func TestEndToEnd(t *testing.T) {
	hidden := net.NewDense(2, 2)
	output := net.NewDense(2, 1)
	require.NoError(t, hidden.SetActivation(act.Sigmoid))
	require.NoError(t, output.SetActivation(act.Sigmoid))

	src := net.NewSource(42)
	hidden.Randomize(src)
	output.Randomize(src)

	network := net.New()
	require.NoError(t, network.AddLayer(hidden))
	require.NoError(t, network.AddLayer(output))

	initial, final, err := network.Train(
		[][]float64{{1, 1}},
		[][]float64{{0}},
		0.1,
		500,
	)
	require.NoError(t, err)
	assert.LessOrEqual(t, final, initial)

	out, err := network.Forward([]float64{1, 1})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestPublicErrors(t *testing.T) {
	network := net.New()
	require.NoError(t, network.AddLayer(net.NewDense(2, 2)))

	err := network.AddLayer(net.NewDense(3, 1))
	assert.ErrorIs(t, err, net.ErrShapeMismatch)
}
