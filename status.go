package bignum

// Status reports the outcome of a shift operation.
type Status int

// Shift Outcomes
const (
	// Success indicates the shift completed and the number was
	// updated and renormalized.
	Success Status = iota

	// Zeroed indicates a right shift discarded every significant
	// bit; the number is now the canonical zero. It is a valid,
	// fully applied result, not a failure.
	Zeroed

	// Overflow indicates a left shift would have carried a
	// significant bit to or past bit 64*Capacity; the number is
	// byte-for-byte unchanged.
	Overflow
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Zeroed:
		return "zeroed"
	case Overflow:
		return "overflow"
	}

	return "unknown"
}
