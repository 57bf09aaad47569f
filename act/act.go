// Copyright 2026 Strand ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package act exposes the activation-function registry.
//
// An Activation pairs a function with its derivative; the derivative is
// evaluated on the activated output, so registered derivatives must be
// expressible in terms of the function's own output (e.g. the logistic
// sigmoid: d(y) = y·(1-y)).
package act

import "github.com/strand-ml/strand/internal/act"

// Activation is a named function/derivative pair.
type Activation = act.Activation

// Kind names a registered activation function.
type Kind = act.Kind

// Built-in activation kinds.
const (
	Default  = act.Default
	Sigmoid  = act.Sigmoid
	Tanh     = act.Tanh
	ReLU     = act.ReLU
	Identity = act.Identity
)

// ErrUnknownActivation is returned when a Kind has no registered
// Activation.
var ErrUnknownActivation = act.ErrUnknownActivation

// New returns the Activation registered under kind.
func New(kind Kind) (Activation, error) {
	return act.New(kind)
}

// MustNew is like New but panics on unknown kinds.
func MustNew(kind Kind) Activation {
	return act.MustNew(kind)
}

// Register adds an Activation under the given Kind.
func Register(kind Kind, a Activation) {
	act.Register(kind, a)
}
