package weights

import (
	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
)

// Record is the benchmarked cost of one instruction.
//
// BaseTime, ProofSize, Reads and Writes determine the instruction's weight.
// The remaining fields describe the benchmark run that produced the record and
// never affect the weight.
type Record struct {
	// BaseTime is the fitted execution time in picoseconds, excluding storage access.
	BaseTime uint64 `json:"base_time" yaml:"base_time"`
	// ProofSize is the estimated worst case storage proof size in bytes.
	ProofSize uint64 `json:"proof_size" yaml:"proof_size"`
	Reads     uint64 `json:"reads" yaml:"reads"`
	Writes    uint64 `json:"writes" yaml:"writes"`

	MeasuredProofSize uint64          `json:"measured_proof_size" yaml:"measured_proof_size"`
	MinExecutionTime  uint64          `json:"min_execution_time" yaml:"min_execution_time"`
	Storage           []StorageAccess `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// StorageAccess names a storage item touched while benchmarking an
// instruction and how often it was read and written.
type StorageAccess struct {
	Pallet string `json:"pallet" yaml:"pallet"`
	Item   string `json:"item" yaml:"item"`
	Reads  uint64 `json:"reads" yaml:"reads"`
	Writes uint64 `json:"writes" yaml:"writes"`
	// Proof describes how the proof size of the item was accounted, e.g.
	// "Skipped" or the max_values/max_size/mode tuple.
	Proof string `json:"proof,omitempty" yaml:"proof,omitempty"`
}

// Weight combines the record with the given per-access db weight:
//
//	ref_time   = base_time  + reads*read.ref_time   + writes*write.ref_time
//	proof_size = proof_size + reads*read.proof_size + writes*write.proof_size
//
// Every step saturates.
func (r Record) Weight(db weight.RuntimeDbWeight) weight.Weight {
	return weight.FromParts(r.BaseTime, 0).
		SaturatingAdd(weight.FromParts(0, r.ProofSize)).
		SaturatingAdd(db.Reads(r.Reads)).
		SaturatingAdd(db.Writes(r.Writes))
}

// Base returns the weight of the record without any storage access.
func (r Record) Base() weight.Weight {
	return weight.FromParts(r.BaseTime, r.ProofSize)
}
