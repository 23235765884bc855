// Package arith implements exact ordinal arithmetic on values up to ε₀:
// addition, multiplication, exponentiation and tetration under the
// classical (non-commutative) ordinal laws.
//
// Every public operation takes the calculation's budget meter and charges
// it for each structural step, including recursive sub-calls, so the
// meter bounds total work rather than call depth. A calculation either
// returns a fully formed value or fails atomically with one of:
//
//   - budget.ExceededError: the operation budget ran out
//   - UnsupportedError: an ε₀/tower combination outside the closed
//     identity set, or an undefined case such as 0↑↑ω
//   - ordinal.InvariantError: internal normal-form violation (a bug)
//
// Dispatch order is fixed everywhere: ω-towers are expanded to CNF first,
// then the ε₀ identity table is consulted, then the CNF algorithm runs.
// ε₀ results are only ever produced where absorption is sound; identities
// that would leave ε₀ (such as e_0+1 or e_0*2) are rejected rather than
// silently approximated.
package arith
