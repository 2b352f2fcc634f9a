package ethbls

// Status is the result of every fallible operation in this package. All
// failure modes are reported as status codes; nothing in the protocol layer
// panics on input data.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusVerificationFailure
	StatusInvalidEncoding
	StatusCoordinateGreaterOrEqualThanModulus
	StatusPointAtInfinity
	StatusPointNotOnCurve
	StatusPointNotInSubgroup
	StatusZeroSecretKey
	StatusSecretKeyLargerThanCurveOrder
	StatusZeroLengthAggregation
	StatusInputsLengthsMismatch
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusVerificationFailure:
		return "verification failure"
	case StatusInvalidEncoding:
		return "invalid encoding"
	case StatusCoordinateGreaterOrEqualThanModulus:
		return "coordinate greater or equal than modulus"
	case StatusPointAtInfinity:
		return "point at infinity"
	case StatusPointNotOnCurve:
		return "point not on curve"
	case StatusPointNotInSubgroup:
		return "point not in subgroup"
	case StatusZeroSecretKey:
		return "zero secret key"
	case StatusSecretKeyLargerThanCurveOrder:
		return "secret key larger than curve order"
	case StatusZeroLengthAggregation:
		return "zero-length aggregation"
	case StatusInputsLengthsMismatch:
		return "inputs lengths mismatch"
	}
	return "unknown status"
}

// Error lets a non-success Status be returned through error-typed plumbing.
func (s Status) Error() string {
	return s.String()
}
