package pgtype

// arrayDimension is one dimension of a multi-dimensional rectangular array,
// as carried in the binary array header. The lower bound is always 1 — see
// §3.3 of the package's governing specification.
type arrayDimension struct {
	Length     int32
	LowerBound int32
}

// dimensionsOf converts the plain dimension lengths ArrayDims returns into
// the arrayDimension records the wire header needs.
func dimensionsOf(dims []int) []arrayDimension {
	out := make([]arrayDimension, len(dims))
	for i, d := range dims {
		out[i] = arrayDimension{Length: int32(d), LowerBound: 1}
	}
	return out
}

// cardinality returns the total element count implied by dims.
func cardinality(dims []arrayDimension) int {
	n := 1
	for _, d := range dims {
		n *= int(d.Length)
	}
	return n
}
