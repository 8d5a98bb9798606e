package metrics

const (
	LabelInstruction = "instruction"
	LabelDimension   = "dimension"
)

const (
	DimensionRefTime   = "ref_time"
	DimensionProofSize = "proof_size"
)
