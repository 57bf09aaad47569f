// Package act provides the activation functions used by dense layers.
//
// An Activation is a pair of total functions: the activation f itself and
// its derivative d. The layer backward pass evaluates d on the *activated
// output*, not on the pre-activation sum, so every registered derivative
// must be expressed in terms of the function's own output. The logistic
// sigmoid is the canonical example: d(y) = y * (1 - y).
//
// This constraint is load-bearing for the layer math and must hold for any
// activation added via Register.
package act

import (
	"math"

	"github.com/pkg/errors"
)

// ErrUnknownActivation is returned when a Kind has no registered Activation.
var ErrUnknownActivation = errors.New("unknown activation kind")

// Kind names a registered activation function.
type Kind string

// Built-in activation kinds.
const (
	// Default resolves to the logistic sigmoid, the canonical member of
	// the family whose derivative is expressible in its own output.
	Default Kind = "default"

	Sigmoid  Kind = "sigmoid"
	Tanh     Kind = "tanh"
	ReLU     Kind = "relu"
	Identity Kind = "identity"
)

// Activation is a named function/derivative pair.
//
// F is the activation applied elementwise to a layer's pre-activation sums.
// D is the derivative of F, evaluated on F's own output.
type Activation struct {
	Name string
	F    func(float64) float64
	D    func(float64) float64
}

var registry = map[Kind]Activation{}

func init() {
	Register(Sigmoid, Activation{
		Name: "sigmoid",
		F:    func(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) },
		D:    func(y float64) float64 { return y * (1.0 - y) },
	})
	Register(Tanh, Activation{
		Name: "tanh",
		F:    math.Tanh,
		D:    func(y float64) float64 { return 1.0 - y*y },
	})
	Register(ReLU, Activation{
		Name: "relu",
		F:    func(x float64) float64 { return math.Max(0, x) },
		D: func(y float64) float64 {
			if y > 0 {
				return 1.0
			}
			return 0.0
		},
	})
	Register(Identity, Activation{
		Name: "identity",
		F:    func(x float64) float64 { return x },
		D:    func(float64) float64 { return 1.0 },
	})

	registry[Default] = registry[Sigmoid]
}

// Register adds an Activation under the given Kind, replacing any previous
// registration. The Activation's D must be evaluable on F's output.
func Register(kind Kind, a Activation) {
	registry[kind] = a
}

// New returns the Activation registered under kind.
//
// Returns ErrUnknownActivation if no Activation is registered for kind.
func New(kind Kind) (Activation, error) {
	a, ok := registry[kind]
	if !ok {
		return Activation{}, errors.Wrapf(ErrUnknownActivation, "%q", kind)
	}
	return a, nil
}

// MustNew is like New but panics on unknown kinds.
//
// Intended for static configuration where the kind is a compile-time
// constant.
func MustNew(kind Kind) Activation {
	a, err := New(kind)
	if err != nil {
		panic(err)
	}
	return a
}
