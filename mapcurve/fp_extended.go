package mapcurve

// Fixed-width serialization of field elements, kept from this codebase's
// Fp type for the cross-validation oracle tests. The uint256 ABI boundary
// in api.go converts with uint256.FromBig instead.
//
// The crypto package's Montgomery-form conversion, FpElement wrapper,
// batch inversion, multi-exponentiation, and division helpers are not
// reproduced here: nothing in SSWU, SvdW, or the isogeny evaluator needs
// them (no batch workloads, no Montgomery-form internals, no multi-scalar
// sums), and carrying dead API surface for a two-function library would
// only obscure the deterministic straight-line pipelines (see DESIGN.md).

import "math/big"

// fpSerialize writes a field element as a 32-byte big-endian byte slice.
func fpSerialize(a *big.Int) []byte {
	out := make([]byte, 32)
	b := new(big.Int).Mod(a, fpP).Bytes()
	copy(out[32-len(b):], b)
	return out
}
