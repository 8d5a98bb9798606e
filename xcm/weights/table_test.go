package weights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
	"github.com/Bullrich/polkadot-fellows-runtimes/model/xcm"
	"github.com/Bullrich/polkadot-fellows-runtimes/xcm/errors"
)

func recordsFixture() map[xcm.Instruction]Record {
	records := make(map[xcm.Instruction]Record, xcm.Count())
	for _, i := range xcm.AllInstructions() {
		records[i] = Record{BaseTime: uint64(i+1) * 1_000_000}
	}
	records[xcm.ReportHolding] = Record{
		BaseTime:  35_000_000,
		ProofSize: 3676,
		Reads:     7,
		Writes:    4,
		Storage: []StorageAccess{
			{Pallet: "Dmp", Item: "DownwardMessageQueues", Reads: 1, Writes: 1},
		},
	}
	return records
}

func provenanceFixture() Provenance {
	return Provenance{
		Pallet:         "pallet_xcm_benchmarks::generic",
		HarnessVersion: "4.0.0-dev",
		Date:           "2023-06-19",
		Steps:          50,
		Repeat:         20,
		Command:        []string{"./polkadot", "benchmark", "pallet"},
	}
}

func TestRecordWeight(t *testing.T) {
	r := Record{BaseTime: 35_000_000, ProofSize: 3676, Reads: 7, Writes: 4}

	w := r.Weight(weight.RuntimeDbWeight{
		Read:  weight.FromParts(25_000_000, 0),
		Write: weight.FromParts(100_000_000, 0),
	})
	require.Equal(t, uint64(35_000_000+7*25_000_000+4*100_000_000), w.RefTime)
	require.Equal(t, uint64(3676), w.ProofSize)

	t.Run("proof size cost per access", func(t *testing.T) {
		w := r.Weight(weight.RuntimeDbWeight{
			Read:  weight.FromParts(0, 10),
			Write: weight.FromParts(0, 100),
		})
		require.Equal(t, weight.FromParts(35_000_000, 3676+70+400), w)
	})

	t.Run("saturates", func(t *testing.T) {
		w := r.Weight(weight.RuntimeDbWeight{Read: weight.FromParts(math.MaxUint64, 0)})
		require.Equal(t, uint64(math.MaxUint64), w.RefTime)
	})

	require.Equal(t, weight.FromParts(35_000_000, 3676), r.Base())
}

func TestNewTable(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		table, err := NewTable(recordsFixture(), provenanceFixture(), weight.RocksDbWeight)
		require.NoError(t, err)
		require.Equal(t, weight.FromParts(610_000_000, 3676), table.ReportHolding())
		require.Equal(t, weight.FromParts(2_000_000, 0), table.BuyExecution())
		require.Equal(t, xcm.AllInstructions(), table.Instructions())
		require.Equal(t, weight.RocksDbWeight, table.DbWeight())
	})

	t.Run("missing records", func(t *testing.T) {
		records := recordsFixture()
		delete(records, xcm.Trap)
		delete(records, xcm.BurnAsset)

		_, err := NewTable(records, provenanceFixture(), weight.RocksDbWeight)
		require.Error(t, err)
		require.True(t, errors.IsIncompleteTableError(err))

		var incomplete *errors.IncompleteTableError
		require.True(t, errors.As(err, &incomplete))
		require.Equal(t, []string{"burn_asset", "trap"}, incomplete.Missing())
	})

	t.Run("records outside the instruction set", func(t *testing.T) {
		records := recordsFixture()
		records[xcm.Instruction(100)] = Record{}

		_, err := NewTable(records, provenanceFixture(), weight.RocksDbWeight)
		require.True(t, errors.IsIncompleteTableError(err))
		require.Contains(t, err.Error(), "instruction_100")
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewTable(recordsFixture(), provenanceFixture(), nil)
		require.Error(t, err)
	})

	t.Run("must panics", func(t *testing.T) {
		require.Panics(t, func() {
			MustNewTable(map[xcm.Instruction]Record{}, provenanceFixture(), weight.RocksDbWeight)
		})
	})
}

// TestTableIsImmutable checks that mutating the inputs or the returned values
// does not leak into the table.
func TestTableIsImmutable(t *testing.T) {
	records := recordsFixture()
	provenance := provenanceFixture()
	table, err := NewTable(records, provenance, weight.RocksDbWeight)
	require.NoError(t, err)

	records[xcm.ReportHolding].Storage[0].Pallet = "Ump"
	records[xcm.Transact] = Record{BaseTime: 1}
	provenance.Command[0] = "./kusama"

	assert.Equal(t, "Dmp", table.Record(xcm.ReportHolding).Storage[0].Pallet)
	assert.Equal(t, uint64(4_000_000), table.Record(xcm.Transact).BaseTime)
	assert.Equal(t, "./polkadot", table.Provenance().Command[0])

	table.Provenance().Command[0] = "./kusama"
	assert.Equal(t, "./polkadot", table.Provenance().Command[0])
}

func TestWithDbWeight(t *testing.T) {
	table := MustNewTable(recordsFixture(), provenanceFixture(), weight.RocksDbWeight)
	parity := table.WithDbWeight(weight.ParityDbWeight)

	assert.Equal(t, weight.FromParts(610_000_000, 3676), table.ReportHolding())
	assert.Equal(t, weight.FromParts(291_000_000, 3676), parity.ReportHolding())
	assert.Panics(t, func() { table.WithDbWeight(nil) })
}

func TestWeights(t *testing.T) {
	table := MustNewTable(recordsFixture(), provenanceFixture(), weight.RocksDbWeight)
	all := table.Weights()

	require.Len(t, all, xcm.Count())
	for _, i := range xcm.AllInstructions() {
		require.Equal(t, table.Weight(i), all[i])
		require.Equal(t, table.Weight(i), Dispatch(table, i))
	}
}

func TestUnknownInstructionPanics(t *testing.T) {
	table := MustNewTable(recordsFixture(), provenanceFixture(), weight.RocksDbWeight)

	require.Panics(t, func() { table.Weight(xcm.Instruction(xcm.Count())) })
	require.Panics(t, func() { Dispatch(table, xcm.Instruction(200)) })
}
