package metrics

import (
	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
	"github.com/Bullrich/polkadot-fellows-runtimes/module"
)

type NoopCollector struct{}

var _ module.XCMWeightMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) InstructionCharged(instruction string, charged weight.Weight) {}
func (nc *NoopCollector) WeightLimitExceeded(instruction string)                       {}
func (nc *NoopCollector) ProgramWeighed(total weight.Weight)                           {}
