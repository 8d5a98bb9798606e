package weight

// RuntimeDbWeight is the cost of a single storage access in the runtime's
// database backend. Each access carries both a reference time and a proof
// size component; the well-known backends below charge time only.
type RuntimeDbWeight struct {
	Read  Weight `json:"read" yaml:"read" mapstructure:"read"`
	Write Weight `json:"write" yaml:"write" mapstructure:"write"`
}

// WeightsPerSecond is the reference time of one second, in picoseconds.
const WeightsPerSecond uint64 = 1_000_000_000_000

// WeightsPerNanos is the reference time of one nanosecond, in picoseconds.
const WeightsPerNanos uint64 = 1_000

var (
	// RocksDbWeight is the per-access cost measured for the RocksDB backend.
	RocksDbWeight = RuntimeDbWeight{
		Read:  FromParts(25_000*WeightsPerNanos, 0),
		Write: FromParts(100_000*WeightsPerNanos, 0),
	}

	// ParityDbWeight is the per-access cost measured for the ParityDB backend.
	ParityDbWeight = RuntimeDbWeight{
		Read:  FromParts(8_000*WeightsPerNanos, 0),
		Write: FromParts(50_000*WeightsPerNanos, 0),
	}
)

// Reads returns the weight of n storage reads.
func (db RuntimeDbWeight) Reads(n uint64) Weight {
	return db.Read.SaturatingMul(n)
}

// Writes returns the weight of n storage writes.
func (db RuntimeDbWeight) Writes(n uint64) Weight {
	return db.Write.SaturatingMul(n)
}

// ReadsWrites returns the weight of r reads and w writes.
func (db RuntimeDbWeight) ReadsWrites(r, w uint64) Weight {
	return db.Reads(r).SaturatingAdd(db.Writes(w))
}

// DbWeight returns db itself, so a fixed RuntimeDbWeight can be used wherever
// a provider of the current db weight is expected.
func (db RuntimeDbWeight) DbWeight() RuntimeDbWeight {
	return db
}
