package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
)

func TestXCMWeightCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewXCMWeightCollector(reg)

	c.InstructionCharged("report_holding", weight.FromParts(610_000_000, 3676))
	c.InstructionCharged("report_holding", weight.FromParts(610_000_000, 3676))
	c.WeightLimitExceeded("transact")
	c.ProgramWeighed(weight.FromParts(1_000_000, 0))

	require.Equal(t, float64(2), testutil.ToFloat64(c.instructionsCharged.WithLabelValues("report_holding")))
	require.Equal(t, float64(1_220_000_000), testutil.ToFloat64(c.weightCharged.WithLabelValues("report_holding", DimensionRefTime)))
	require.Equal(t, float64(7352), testutil.ToFloat64(c.weightCharged.WithLabelValues("report_holding", DimensionProofSize)))
	require.Equal(t, float64(1), testutil.ToFloat64(c.limitExceeded.WithLabelValues("transact")))

	count, err := testutil.GatherAndCount(reg, "xcm_weight_meter_program_ref_time", "xcm_weight_meter_program_proof_size")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestXCMWeightCollectorProgramBuckets(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewXCMWeightCollector(reg)

	c.ProgramWeighed(weight.FromParts(610_000_000, 3676))

	families, err := reg.Gather()
	require.NoError(t, err)

	// cumulative count of the bucket with the given upper bound
	cumulative := map[string]map[float64]uint64{}
	for _, mf := range families {
		buckets := map[float64]uint64{}
		for _, b := range mf.GetMetric()[0].GetHistogram().GetBucket() {
			buckets[b.GetUpperBound()] = b.GetCumulativeCount()
		}
		cumulative[mf.GetName()] = buckets
	}

	refTime := cumulative["xcm_weight_meter_program_ref_time"]
	require.Equal(t, uint64(0), refTime[256_000_000])
	require.Equal(t, uint64(1), refTime[1_024_000_000])

	proofSize := cumulative["xcm_weight_meter_program_proof_size"]
	require.Equal(t, uint64(0), proofSize[2048])
	require.Equal(t, uint64(1), proofSize[4096])
}

func TestXCMWeightCollectorUnregistered(t *testing.T) {
	require.NotPanics(t, func() {
		NewXCMWeightCollector(nil).WeightLimitExceeded("trap")
		NewXCMWeightCollector(nil).WeightLimitExceeded("trap")
	})
}
