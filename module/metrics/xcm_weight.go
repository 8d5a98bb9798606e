package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
	"github.com/Bullrich/polkadot-fellows-runtimes/module"
)

var _ module.XCMWeightMetrics = (*XCMWeightCollector)(nil)

type XCMWeightCollector struct {
	instructionsCharged *prometheus.CounterVec
	weightCharged       *prometheus.CounterVec
	limitExceeded       *prometheus.CounterVec
	programRefTime      prometheus.Histogram
	programProofSize    prometheus.Histogram
}

// NewXCMWeightCollector creates the weight meter metrics and registers them
// with registerer. A nil registerer leaves the metrics unregistered.
func NewXCMWeightCollector(registerer prometheus.Registerer) *XCMWeightCollector {
	factory := promauto.With(registerer)

	return &XCMWeightCollector{
		instructionsCharged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceXCM,
			Subsystem: subsystemWeightMeter,
			Name:      "instructions_charged_total",
			Help:      "number of instructions charged against a weight budget",
		}, []string{LabelInstruction}),

		weightCharged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceXCM,
			Subsystem: subsystemWeightMeter,
			Name:      "weight_charged_total",
			Help:      "weight charged per instruction, split by dimension",
		}, []string{LabelInstruction, LabelDimension}),

		limitExceeded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceXCM,
			Subsystem: subsystemWeightMeter,
			Name:      "limit_exceeded_total",
			Help:      "number of instructions rejected for lack of weight budget",
		}, []string{LabelInstruction}),

		// 1µs to ~4.2s of ref time
		programRefTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceXCM,
			Subsystem: subsystemWeightMeter,
			Name:      "program_ref_time",
			Help:      "total ref time (picoseconds) of message programs checked before execution",
			Buckets:   prometheus.ExponentialBuckets(1_000_000, 4, 12),
		}),

		// 256B to 4MiB of proof
		programProofSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceXCM,
			Subsystem: subsystemWeightMeter,
			Name:      "program_proof_size",
			Help:      "total proof size (bytes) of message programs checked before execution",
			Buckets:   prometheus.ExponentialBuckets(256, 2, 15),
		}),
	}
}

func (c *XCMWeightCollector) InstructionCharged(instruction string, charged weight.Weight) {
	c.instructionsCharged.WithLabelValues(instruction).Inc()
	c.weightCharged.WithLabelValues(instruction, DimensionRefTime).Add(float64(charged.RefTime))
	c.weightCharged.WithLabelValues(instruction, DimensionProofSize).Add(float64(charged.ProofSize))
}

func (c *XCMWeightCollector) WeightLimitExceeded(instruction string) {
	c.limitExceeded.WithLabelValues(instruction).Inc()
}

func (c *XCMWeightCollector) ProgramWeighed(total weight.Weight) {
	c.programRefTime.Observe(float64(total.RefTime))
	c.programProofSize.Observe(float64(total.ProofSize))
}
