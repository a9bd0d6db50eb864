package mapcurve

import (
	"fmt"
	"math/big"
)

// FieldElementError reports that a caller-supplied value is not a valid
// field element (u >= p). Analogous to this codebase's errBN254InvalidField
// sentinel, but carries the offending witness for diagnostics.
type FieldElementError struct {
	U *big.Int
}

func (e *FieldElementError) Error() string {
	return fmt.Sprintf("mapcurve: invalid field element: u = %s is not < p", e.U.String())
}

// InvariantError reports that an internal invariant that should hold
// unconditionally did not — e.g. a square root failed to verify, or a
// denominator evaluated to zero where the algorithm guarantees it cannot.
// This indicates a bug, not a bad caller input, and is not recoverable
// in-process.
type InvariantError struct {
	Witness *big.Int
	Reason  string
}

func (e *InvariantError) Error() string {
	if e.Witness == nil {
		return fmt.Sprintf("mapcurve: internal invariant violated: %s", e.Reason)
	}
	return fmt.Sprintf("mapcurve: internal invariant violated: %s (witness = %s)", e.Reason, e.Witness.String())
}

func invalidFieldElement(u *big.Int) error {
	return &FieldElementError{U: new(big.Int).Set(u)}
}

func mapToPointFailed(witness *big.Int, reason string) error {
	return &InvariantError{Witness: witness, Reason: reason}
}
