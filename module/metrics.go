package module

import (
	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
)

// XCMWeightMetrics records how XCM instruction weights are charged against
// message weight budgets.
type XCMWeightMetrics interface {
	// InstructionCharged records the weight charged for a single instruction.
	InstructionCharged(instruction string, charged weight.Weight)

	// WeightLimitExceeded records an instruction rejected because the weight
	// budget of its message was exhausted.
	WeightLimitExceeded(instruction string)

	// ProgramWeighed records the total weight of a message program checked
	// against a budget before execution.
	ProgramWeighed(total weight.Weight)
}
