package weights

import (
	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
)

// DbWeightProvider supplies the current cost of a single storage read and
// write. It is consulted on every weight query, so one table serves runtimes
// configured with different database backends.
type DbWeightProvider interface {
	DbWeight() weight.RuntimeDbWeight
}

var _ DbWeightProvider = weight.RuntimeDbWeight{}

// DbWeightFunc adapts a function to a DbWeightProvider.
type DbWeightFunc func() weight.RuntimeDbWeight

func (f DbWeightFunc) DbWeight() weight.RuntimeDbWeight {
	return f()
}
