package net

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/strand-ml/strand/internal/act"
	"github.com/strand-ml/strand/internal/rng"
)

// Dense is a fully-connected layer with fixed input and output widths.
//
// The weight matrix (output width × input width) is the authoritative
// storage; each owned Neuron's weight vector aliases one matrix row, so
// per-neuron mutations (Randomize, Normalize, SetWeights) are immediately
// visible to the forward computation with no resynchronization step.
//
// Widths are fixed at construction and every entry point checks vector
// lengths against them, failing with ErrLengthMismatch on violation.
type Dense struct {
	in, out int

	neurons []*Neuron
	weights *mat.Dense
	bias    *mat.VecDense

	activation act.Activation

	last  *mat.VecDense // activated output of the most recent ForwardMut
	delta *mat.VecDense // most recent per-unit error
}

var _ NetLayer = (*Dense)(nil)

// NewDense creates a dense layer with out zero-initialized neurons of input
// width in, a zero bias vector, and the Default activation.
func NewDense(in, out int) *Dense {
	weights := mat.NewDense(out, in, nil)
	neurons := make([]*Neuron, out)
	for i := range neurons {
		// Row views share storage with the weight matrix.
		neurons[i] = newRowNeuron(mat.NewVecDense(in, weights.RawRowView(i)), 0.0)
	}
	return &Dense{
		in:         in,
		out:        out,
		neurons:    neurons,
		weights:    weights,
		bias:       mat.NewVecDense(out, nil),
		activation: act.MustNew(act.Default),
		last:       mat.NewVecDense(out, nil),
		delta:      mat.NewVecDense(out, nil),
	}
}

// SetActivation selects the layer's activation function by kind.
func (d *Dense) SetActivation(kind act.Kind) error {
	a, err := act.New(kind)
	if err != nil {
		return err
	}
	d.activation = a
	return nil
}

// Neuron returns the i-th owned neuron.
//
// Panics if i is out of bounds.
func (d *Dense) Neuron(i int) *Neuron {
	if i < 0 || i >= len(d.neurons) {
		panic("Dense.Neuron: index out of bounds")
	}
	return d.neurons[i]
}

// Randomize draws every neuron's weights from a uniform [0, 1)
// distribution. Biases are left unchanged.
func (d *Dense) Randomize(src rng.Source) {
	for _, n := range d.neurons {
		n.Randomize(src)
	}
}

// Normalize resets every neuron to all-ones weights and zero bias,
// producing a deterministic baseline layer.
func (d *Dense) Normalize() {
	for _, n := range d.neurons {
		n.Normalize()
	}
}

// Format returns the layer's (input width, output width) pair.
func (d *Dense) Format() (in, out int) {
	return d.in, d.out
}

// Forward computes f(W·x + b) elementwise. Pure; caches are not touched.
func (d *Dense) Forward(inputs []float64) ([]float64, error) {
	if len(inputs) != d.in {
		return nil, errors.Wrapf(ErrLengthMismatch, "dense layer expects %d inputs, got %d", d.in, len(inputs))
	}

	var sum mat.VecDense
	sum.MulVec(d.weights, mat.NewVecDense(len(inputs), inputs))
	sum.AddVec(&sum, d.bias)

	out := make([]float64, d.out)
	for i := range out {
		out[i] = d.activation.F(sum.AtVec(i))
	}
	return out, nil
}

// ForwardMut is Forward plus caching of the activated output.
func (d *Dense) ForwardMut(inputs []float64) ([]float64, error) {
	out, err := d.Forward(inputs)
	if err != nil {
		return nil, err
	}
	copy(d.last.RawVector().Data, out)
	return out, nil
}

// Weights returns a snapshot of the weight matrix, one row per neuron.
func (d *Dense) Weights() [][]float64 {
	ws := make([][]float64, d.out)
	for i, n := range d.neurons {
		ws[i] = n.Weights()
	}
	return ws
}

// LastResult returns the most recent cached activated output.
func (d *Dense) LastResult() []float64 {
	return vecSnapshot(d.last)
}

// Errors returns the most recent cached per-unit delta.
func (d *Dense) Errors() []float64 {
	return vecSnapshot(d.delta)
}

// BackwardOutput computes the terminal layer's delta:
//
//	delta = (expected - out) ∘ (expected - out) ∘ d(out)
//
// The squared residual is intentional; see NetLayer.BackwardOutput.
func (d *Dense) BackwardOutput(expected []float64) ([]float64, error) {
	if len(expected) != d.out {
		return nil, errors.Wrapf(ErrLengthMismatch, "dense layer has %d outputs, expected vector has %d", d.out, len(expected))
	}

	var e mat.VecDense
	e.SubVec(mat.NewVecDense(len(expected), expected), d.last)
	e.MulElemVec(&e, &e)
	e.MulElemVec(&e, d.derivatives())

	d.delta.CopyVec(&e)
	return vecSnapshot(d.delta), nil
}

// Backward computes a non-terminal layer's delta from the next layer's
// weight matrix and delta:
//
//	delta = (nextWeightsᵀ · nextDeltas) ∘ d(out)
func (d *Dense) Backward(nextWeights [][]float64, nextDeltas []float64) ([]float64, error) {
	rows := len(nextWeights)
	if rows == 0 || len(nextDeltas) != rows {
		return nil, errors.Wrapf(ErrLengthMismatch, "next layer has %d weight rows but %d deltas", rows, len(nextDeltas))
	}
	cols := len(nextWeights[0])
	if cols != d.out {
		return nil, errors.Wrapf(ErrShapeMismatch, "next layer weights have width %d, this layer has %d outputs", cols, d.out)
	}

	flat := make([]float64, 0, rows*cols)
	for _, row := range nextWeights {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrShapeMismatch, "ragged next-layer weight matrix: row has %d columns, want %d", len(row), cols)
		}
		flat = append(flat, row...)
	}
	w := mat.NewDense(rows, cols, flat)

	var e mat.VecDense
	e.MulVec(w.T(), mat.NewVecDense(rows, nextDeltas))
	e.MulElemVec(&e, d.derivatives())

	d.delta.CopyVec(&e)
	return vecSnapshot(d.delta), nil
}

// UpdateLayer applies one in-place gradient descent step using the cached
// delta and the previous layer's cached output.
func (d *Dense) UpdateLayer(prevResult []float64, lr float64) error {
	if len(prevResult) != d.in {
		return errors.Wrapf(ErrLengthMismatch, "dense layer expects %d previous-layer outputs, got %d", d.in, len(prevResult))
	}

	for i := 0; i < d.out; i++ {
		row := d.weights.RawRowView(i)
		e := d.delta.AtVec(i)
		for j := range row {
			row[j] -= lr * e * prevResult[j]
		}
	}
	d.bias.AddScaledVec(d.bias, -lr, d.delta)
	return nil
}

// derivatives evaluates the activation derivative on the cached activated
// output, elementwise. The derivative is applied to the output, not the
// pre-activation sum; see package act.
func (d *Dense) derivatives() *mat.VecDense {
	deriv := mat.NewVecDense(d.out, nil)
	for i := 0; i < d.out; i++ {
		deriv.SetVec(i, d.activation.D(d.last.AtVec(i)))
	}
	return deriv
}

func vecSnapshot(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	copy(out, v.RawVector().Data)
	return out
}
