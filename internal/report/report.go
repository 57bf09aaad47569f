// Package report delivers per-epoch training progress to an external sink.
//
// The network core never writes to stdout itself; it hands (epoch, loss)
// pairs to a Reporter and makes no guarantee about the Reporter's side
// effects.
package report

import (
	"fmt"
	"io"
)

// Reporter receives one (epoch index, loss) pair per training step.
type Reporter interface {
	Epoch(epoch int, loss float64)
}

// Discard is a Reporter that drops all progress. It is the default for a
// freshly constructed network.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Epoch(int, float64) {}

// Writer returns a Reporter that rewrites a single progress line on w for
// every epoch.
func Writer(w io.Writer) Reporter {
	return &writer{w: w}
}

type writer struct {
	w io.Writer
}

func (r *writer) Epoch(epoch int, loss float64) {
	fmt.Fprintf(r.w, "\rEpoch: %d \t\t| loss: %v", epoch, loss)
}
