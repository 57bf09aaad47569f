package net

import "errors"

// Fatal errors. All of these abort the current operation; none are
// recoverable and nothing retries.
var (
	// ErrShapeMismatch reports a layer whose input width does not match
	// the previous layer's output width. This is a construction-time
	// configuration error, not a runtime data error.
	ErrShapeMismatch = errors.New("layer shapes do not chain")

	// ErrEmptyNetwork reports inference or training on a network with no
	// layers.
	ErrEmptyNetwork = errors.New("network has no layers")

	// ErrEmptyTrainingSet reports a Train call with zero samples.
	ErrEmptyTrainingSet = errors.New("training set is empty")

	// ErrLengthMismatch reports an input or target vector whose length
	// does not match the relevant layer's declared width.
	ErrLengthMismatch = errors.New("vector length does not match layer width")
)
