package weight

import (
	"fmt"
	"math"
	"math/bits"
)

// Weight is the two-dimensional cost of an operation: the reference execution
// time in picoseconds and the worst case size, in bytes, of the storage proof
// it contributes.
//
// All arithmetic on Weight saturates at math.MaxUint64. A weight gates
// resource limits, so an overflow must clamp high instead of wrapping to a
// small value.
type Weight struct {
	RefTime   uint64 `json:"ref_time" yaml:"ref_time"`
	ProofSize uint64 `json:"proof_size" yaml:"proof_size"`
}

// FromParts constructs a Weight from its two components.
func FromParts(refTime, proofSize uint64) Weight {
	return Weight{RefTime: refTime, ProofSize: proofSize}
}

// Zero returns the empty weight.
func Zero() Weight {
	return Weight{}
}

// MaxWeight returns the largest representable weight.
func MaxWeight() Weight {
	return Weight{RefTime: math.MaxUint64, ProofSize: math.MaxUint64}
}

// SaturatingAdd returns w + other, component-wise, clamped at math.MaxUint64.
func (w Weight) SaturatingAdd(other Weight) Weight {
	return Weight{
		RefTime:   saturatingAdd(w.RefTime, other.RefTime),
		ProofSize: saturatingAdd(w.ProofSize, other.ProofSize),
	}
}

// SaturatingSub returns w - other, component-wise, clamped at zero.
func (w Weight) SaturatingSub(other Weight) Weight {
	return Weight{
		RefTime:   saturatingSub(w.RefTime, other.RefTime),
		ProofSize: saturatingSub(w.ProofSize, other.ProofSize),
	}
}

// SaturatingMul returns w * n, component-wise, clamped at math.MaxUint64.
func (w Weight) SaturatingMul(n uint64) Weight {
	return Weight{
		RefTime:   saturatingMul(w.RefTime, n),
		ProofSize: saturatingMul(w.ProofSize, n),
	}
}

// AnyGt reports whether either component of w is strictly greater than the
// matching component of other.
func (w Weight) AnyGt(other Weight) bool {
	return w.RefTime > other.RefTime || w.ProofSize > other.ProofSize
}

// AllLte reports whether both components of w are at most the matching
// components of other.
func (w Weight) AllLte(other Weight) bool {
	return !w.AnyGt(other)
}

// IsZero reports whether both components are zero.
func (w Weight) IsZero() bool {
	return w.RefTime == 0 && w.ProofSize == 0
}

func (w Weight) String() string {
	return fmt.Sprintf("Weight(ref_time: %d, proof_size: %d)", w.RefTime, w.ProofSize)
}

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

func saturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
