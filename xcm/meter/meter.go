package meter

import (
	"github.com/rs/zerolog"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
	"github.com/Bullrich/polkadot-fellows-runtimes/model/xcm"
	"github.com/Bullrich/polkadot-fellows-runtimes/module"
	"github.com/Bullrich/polkadot-fellows-runtimes/module/metrics"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/errors"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/weights"
)

// Meter tracks the weight consumed while executing one XCM message and
// enforces the message's weight limit. Instruction weights come from a
// WeightInfo.
//
// A Meter is not safe for concurrent use; the WeightInfo it reads is.
type Meter struct {
	limit    weight.Weight
	consumed weight.Weight

	info    weights.WeightInfo
	metrics module.XCMWeightMetrics
	log     zerolog.Logger
}

type MeterOption func(*Meter)

// WithMetrics reports charges to the given metrics collector.
func WithMetrics(m module.XCMWeightMetrics) MeterOption {
	return func(meter *Meter) {
		meter.metrics = m
	}
}

// WithLogger sets the logger used to trace rejected charges.
func WithLogger(log zerolog.Logger) MeterOption {
	return func(meter *Meter) {
		meter.log = log
	}
}

// NewMeter constructs a Meter with the given weight limit.
func NewMeter(limit weight.Weight, info weights.WeightInfo, options ...MeterOption) *Meter {
	m := &Meter{
		limit:   limit,
		info:    info,
		metrics: metrics.NewNoopCollector(),
		log:     zerolog.Nop(),
	}

	for _, option := range options {
		option(m)
	}

	m.log = m.log.With().Str("component", "xcm_weight_meter").Logger()
	return m
}

// Weigh returns the total weight of program, saturating on overflow.
func (m *Meter) Weigh(program []xcm.Instruction) weight.Weight {
	total := weight.Zero()
	for _, i := range program {
		total = total.SaturatingAdd(weights.Dispatch(m.info, i))
	}
	return total
}

// CheckProgram returns an error if the whole program does not fit in the
// remaining budget. It does not charge anything.
func (m *Meter) CheckProgram(program []xcm.Instruction) (weight.Weight, error) {
	total := m.Weigh(program)
	m.metrics.ProgramWeighed(total)

	if total.AnyGt(m.Remaining()) {
		m.log.Debug().
			Stringer("required", total).
			Stringer("remaining", m.Remaining()).
			Int("instructions", len(program)).
			Msg("program exceeds weight limit")
		return total, errors.NewWeightLimitExceededError("program", total, m.Remaining())
	}
	return total, nil
}

// Charge adds the weight of instruction i to the consumed weight. If that
// would exceed the limit in either dimension, nothing is charged and a
// WeightLimitExceededError is returned.
func (m *Meter) Charge(i xcm.Instruction) error {
	w := weights.Dispatch(m.info, i)

	next := m.consumed.SaturatingAdd(w)
	if next.AnyGt(m.limit) {
		m.metrics.WeightLimitExceeded(i.Name())
		m.log.Debug().
			Str("instruction", i.Name()).
			Stringer("required", w).
			Stringer("remaining", m.Remaining()).
			Msg("instruction exceeds weight limit")
		return errors.NewWeightLimitExceededError(i.Name(), w, m.Remaining())
	}

	m.consumed = next
	m.metrics.InstructionCharged(i.Name(), w)
	return nil
}

// Refund returns unused weight to the budget, e.g. when an instruction turned
// out cheaper than its benchmarked worst case. Consumed weight never drops
// below zero.
func (m *Meter) Refund(w weight.Weight) {
	m.consumed = m.consumed.SaturatingSub(w)
}

// Consumed returns the weight charged so far.
func (m *Meter) Consumed() weight.Weight {
	return m.consumed
}

// Limit returns the weight limit.
func (m *Meter) Limit() weight.Weight {
	return m.limit
}

// Remaining returns the weight that can still be charged.
func (m *Meter) Remaining() weight.Weight {
	return m.limit.SaturatingSub(m.consumed)
}
