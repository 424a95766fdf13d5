package device

import "errors"

var (
	// ErrInvalidRules is returned when a rule table fails validation or
	// cannot be decoded.
	ErrInvalidRules = errors.New("invalid classification rules")

	// ErrInvalidConfig is returned when environment configuration cannot
	// be parsed or violates the breakpoint ordering.
	ErrInvalidConfig = errors.New("invalid device configuration")

	// ErrInvalidSnapshot is returned when a signals document cannot be
	// patched. Reading snapshots never errors; only rewriting can.
	ErrInvalidSnapshot = errors.New("invalid signals snapshot")
)
